package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/clearskyva/backoffice/internal/config"
	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/mailer"
	"github.com/clearskyva/backoffice/internal/repository"
)

// ModerationService applies admin status changes to inquiries and
// testimonials. Every mutation goes through an explicit allow-list;
// anything else in a request body is never persisted.
type ModerationService struct {
	inquiries    repository.InquiriesRepository
	testimonials repository.TestimonialsRepository
	mail         mailer.Mailer
	mailCfg      config.MailConfig
}

// NewModerationService builds a new ModerationService.
func NewModerationService(inquiries repository.InquiriesRepository, testimonials repository.TestimonialsRepository, mail mailer.Mailer, mailCfg config.MailConfig) *ModerationService {
	return &ModerationService{
		inquiries:    inquiries,
		testimonials: testimonials,
		mail:         mail,
		mailCfg:      mailCfg,
	}
}

// ListInquiries returns inquiries, optionally filtered by triage status.
func (s *ModerationService) ListInquiries(ctx context.Context, status string) ([]entity.Inquiry, error) {
	if status != "" && status != "all" && !entity.ValidInquiryStatus(status) {
		return nil, ValidationError{Message: "unknown inquiry status"}
	}
	if status == "all" {
		status = ""
	}
	return s.inquiries.List(ctx, status)
}

// UpdateInquiryStatus moves an inquiry through the triage workflow.
func (s *ModerationService) UpdateInquiryStatus(ctx context.Context, id string, req dto.InquiryStatusRequest) (*entity.Inquiry, error) {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid inquiry id"}
	}
	if !entity.ValidInquiryStatus(req.Status) {
		return nil, ValidationError{Message: "unknown inquiry status"}
	}
	return s.inquiries.UpdateStatus(ctx, inquiryID, req.Status)
}

// DeleteInquiry removes an inquiry permanently.
func (s *ModerationService) DeleteInquiry(ctx context.Context, id string) error {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid inquiry id"}
	}
	return s.inquiries.Delete(ctx, inquiryID)
}

// ListTestimonials returns all testimonials for the moderation queue.
func (s *ModerationService) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	return s.testimonials.List(ctx, false)
}

// ListApprovedTestimonials returns the publicly visible set.
func (s *ModerationService) ListApprovedTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	return s.testimonials.List(ctx, true)
}

// ModerateTestimonial applies the allow-listed flag changes. Approval
// transitions from false to true trigger exactly one thank-you email when
// the stored row carries a client address; the email is sent after the
// write and its failure never fails the moderation request.
func (s *ModerationService) ModerateTestimonial(ctx context.Context, id string, req dto.TestimonialModerationRequest) (*entity.Testimonial, error) {
	testimonialID, err := uuid.Parse(id)
	if err != nil {
		return nil, ValidationError{Message: "invalid testimonial id"}
	}

	current, err := s.testimonials.FindByID(ctx, testimonialID)
	if err != nil {
		return nil, err
	}

	next := *current
	if req.IsApproved != nil {
		next.SetApproved(*req.IsApproved)
	}
	if req.IsFeatured != nil {
		if err := next.SetFeatured(*req.IsFeatured); err != nil {
			if errors.Is(err, entity.ErrFeatureUnapproved) {
				return nil, ValidationError{Message: err.Error()}
			}
			return nil, err
		}
	}

	var approvedPtr, featuredPtr *bool
	if req.IsApproved != nil {
		approvedPtr = &next.IsApproved
	}
	// revoking approval clears the featured flag even when the request
	// did not mention it
	if req.IsFeatured != nil || next.IsFeatured != current.IsFeatured {
		featuredPtr = &next.IsFeatured
	}

	updated, err := s.testimonials.UpdateFlags(ctx, testimonialID, approvedPtr, featuredPtr)
	if err != nil {
		return nil, err
	}

	newlyApproved := req.IsApproved != nil && *req.IsApproved && !current.IsApproved
	if newlyApproved && updated.Email != nil && *updated.Email != "" {
		s.sendApprovalThanks(ctx, updated)
	}

	return updated, nil
}

// DeleteTestimonial removes a testimonial permanently.
func (s *ModerationService) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := uuid.Parse(id)
	if err != nil {
		return ValidationError{Message: "invalid testimonial id"}
	}
	return s.testimonials.Delete(ctx, testimonialID)
}

func (s *ModerationService) sendApprovalThanks(ctx context.Context, tm *entity.Testimonial) {
	if s.mail == nil {
		return
	}
	msg := mailer.Message{
		From:    s.mailCfg.FromAddress,
		To:      *tm.Email,
		Subject: "Your testimonial is now live",
		HTML:    fmt.Sprintf("<p>Hi %s,</p><p>Thank you for sharing your experience. Your testimonial has been approved and is now featured on our site.</p>", tm.ClientName),
	}
	if _, err := s.mail.Send(ctx, msg); err != nil {
		log.Printf("approval email failed testimonial_id=%s error=%v", tm.ID, err)
	}
}
