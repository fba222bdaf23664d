package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/clearskyva/backoffice/internal/config"
	"github.com/clearskyva/backoffice/internal/dto"
	"github.com/clearskyva/backoffice/internal/entity"
	"github.com/clearskyva/backoffice/internal/mailer"
	"github.com/clearskyva/backoffice/internal/repository"
)

// ValidationError indicates the submitted payload is invalid.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

// SubmissionService validates and persists public form submissions. Store
// writes are the source of truth; operator notification email is
// best-effort and never fails the visitor-facing request.
type SubmissionService struct {
	inquiries    repository.InquiriesRepository
	testimonials repository.TestimonialsRepository
	mail         mailer.Mailer
	mailCfg      config.MailConfig
	phoneRegion  string
}

// NewSubmissionService builds a new SubmissionService.
func NewSubmissionService(inquiries repository.InquiriesRepository, testimonials repository.TestimonialsRepository, mail mailer.Mailer, mailCfg config.MailConfig, phoneRegion string) *SubmissionService {
	return &SubmissionService{
		inquiries:    inquiries,
		testimonials: testimonials,
		mail:         mail,
		mailCfg:      mailCfg,
		phoneRegion:  phoneRegion,
	}
}

// SubmitContact validates and stores a contact inquiry. A store failure is
// captured through the fallback log and still reported as accepted, so the
// public form never surfaces a backend outage to a prospective client.
func (s *SubmissionService) SubmitContact(ctx context.Context, req dto.ContactRequest) (*entity.Inquiry, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" {
		return nil, ValidationError{Message: "name is required"}
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, ValidationError{Message: err.Error()}
	}

	if req.Phone != nil {
		normalized, _ := NormalizePhone(*req.Phone, s.phoneRegion)
		if normalized == "" {
			req.Phone = nil
		} else {
			req.Phone = &normalized
		}
	}

	inquiry := &entity.Inquiry{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Age:         req.Age,
		Expertise:   req.Expertise,
		CompanyName: req.CompanyName,
		Message:     req.Message,
		Status:      entity.InquiryStatusNew,
	}

	stored, err := s.inquiries.Insert(ctx, inquiry)
	if err != nil {
		s.logFallback("inquiry", req, err)
		stored = inquiry
	}

	s.notifyOperator(ctx, "New consultation inquiry", fmt.Sprintf("<p><strong>%s</strong> (%s) requested a consultation.</p>", stored.Name, stored.Email))

	return stored, nil
}

// SubmitTestimonial validates and stores a client testimonial. New rows
// always start unapproved and unfeatured.
func (s *SubmissionService) SubmitTestimonial(ctx context.Context, req dto.TestimonialSubmitRequest) (*entity.Testimonial, error) {
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.Testimonial = strings.TrimSpace(req.Testimonial)
	req.ServiceType = strings.TrimSpace(req.ServiceType)
	req.Email = strings.TrimSpace(req.Email)

	if req.ClientName == "" {
		return nil, ValidationError{Message: "client_name is required"}
	}
	if req.Testimonial == "" {
		return nil, ValidationError{Message: "testimonial is required"}
	}
	if req.ServiceType == "" {
		return nil, ValidationError{Message: "service_type is required"}
	}
	if !entity.ValidRating(req.Rating) {
		return nil, ValidationError{Message: "rating must be between 1 and 5"}
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, ValidationError{Message: err.Error()}
	}

	testimonial := &entity.Testimonial{
		ClientName:  req.ClientName,
		Company:     req.Company,
		Role:        req.Role,
		Email:       &req.Email,
		Text:        req.Testimonial,
		Rating:      req.Rating,
		ServiceType: req.ServiceType,
	}

	stored, err := s.testimonials.Insert(ctx, testimonial)
	if err != nil {
		s.logFallback("testimonial", req, err)
		stored = testimonial
	}

	s.notifyOperator(ctx, "New testimonial awaiting review", fmt.Sprintf("<p><strong>%s</strong> left a %d-star testimonial for %s.</p>", stored.ClientName, stored.Rating, stored.ServiceType))

	return stored, nil
}

// logFallback captures a submission that could not be persisted so the
// lead is recoverable from the server log.
func (s *SubmissionService) logFallback(kind string, payload any, cause error) {
	data, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		log.Printf("fallback_capture kind=%s error=%v payload_unserializable=%v", kind, cause, marshalErr)
		return
	}
	log.Printf("fallback_capture kind=%s error=%v payload=%s", kind, cause, data)
}

func (s *SubmissionService) notifyOperator(ctx context.Context, subject, html string) {
	if s.mail == nil || s.mailCfg.AdminAddress == "" {
		return
	}
	msg := mailer.Message{
		From:    s.mailCfg.FromAddress,
		To:      s.mailCfg.AdminAddress,
		Subject: subject,
		HTML:    html,
	}
	if _, err := s.mail.Send(ctx, msg); err != nil {
		log.Printf("operator notification failed subject=%q error=%v", subject, err)
	}
}
