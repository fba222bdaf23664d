package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrFeatureUnapproved is returned when a testimonial is featured before approval.
var ErrFeatureUnapproved = errors.New("testimonial must be approved before it can be featured")

// Testimonial is a client-submitted endorsement pending admin approval
// before public display.
type Testimonial struct {
	ID          uuid.UUID `json:"id"`
	ClientName  string    `json:"client_name"`
	Company     *string   `json:"company,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Text        string    `json:"testimonial"`
	Rating      int       `json:"rating"`
	ServiceType string    `json:"service_type"`
	IsApproved  bool      `json:"is_approved"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SetApproved flips the approval flag. Revoking approval also clears the
// featured flag so an unapproved testimonial can never remain featured.
func (t *Testimonial) SetApproved(approved bool) {
	t.IsApproved = approved
	if !approved {
		t.IsFeatured = false
	}
}

// SetFeatured flips the featured flag. Featuring requires prior approval.
func (t *Testimonial) SetFeatured(featured bool) error {
	if featured && !t.IsApproved {
		return ErrFeatureUnapproved
	}
	t.IsFeatured = featured
	return nil
}

// ValidRating reports whether the star rating falls within the 1-5 scale.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
