package dto

// TestimonialSubmitRequest captures public testimonial submissions.
type TestimonialSubmitRequest struct {
	ClientName  string  `json:"client_name"`
	Company     *string `json:"company,omitempty"`
	Role        *string `json:"role,omitempty"`
	Email       string  `json:"email"`
	Testimonial string  `json:"testimonial"`
	Rating      int     `json:"rating"`
	ServiceType string  `json:"service_type"`
}

// TestimonialModerationRequest is the admin PATCH payload. Pointer fields
// distinguish "absent" from "explicitly false"; absent fields stay
// untouched.
type TestimonialModerationRequest struct {
	IsApproved *bool `json:"is_approved,omitempty"`
	IsFeatured *bool `json:"is_featured,omitempty"`
}
