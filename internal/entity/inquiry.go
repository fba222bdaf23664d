package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry statuses an admin can move a submission through.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusCompleted  = "completed"
	InquiryStatusArchived   = "archived"
)

// Inquiry represents a contact-form submission awaiting triage by staff.
type Inquiry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	Age         *int      `json:"age,omitempty"`
	Expertise   *string   `json:"expertise,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
	Message     *string   `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidInquiryStatus reports whether the value belongs to the triage enum.
func ValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusInProgress, InquiryStatusCompleted, InquiryStatusArchived:
		return true
	}
	return false
}
