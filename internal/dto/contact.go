package dto

// ContactRequest captures public contact-form submissions.
type ContactRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Age         *int    `json:"age,omitempty"`
	Expertise   *string `json:"expertise,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Message     *string `json:"message,omitempty"`
}

// InquiryStatusRequest is the admin moderation payload for inquiries.
// Status is the only allow-listed field; anything else in the body is
// ignored by the binder.
type InquiryStatusRequest struct {
	Status string `json:"status"`
}
