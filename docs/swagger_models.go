package docs

// Request and response shapes referenced by the handler annotations.

// ContactRequest is the contact form body.
// @Description Contact form submission
type ContactRequest struct {
	// Visitor name, letters spaces and periods
	Name string `json:"name" example:"Jane Doe"`

	// Reply address
	Email string `json:"email" example:"jane@example.com"`

	// Optional phone number
	Phone string `json:"phone,omitempty" example:"+91 98765 43210"`

	// Message subject
	Subject string `json:"subject" example:"Bulk order enquiry"`

	// One of gk_textiles, gk_steels, general, partnership, feedback
	InterestArea string `json:"interest_area,omitempty" example:"gk_textiles"`

	// Message body
	Message string `json:"message" example:"We would like a quote for cotton yarn."`
}

// NewsletterRequest is the newsletter signup body.
// @Description Newsletter signup
type NewsletterRequest struct {
	Email string `json:"email" example:"reader@example.com"`
}

// SubmissionResponse acknowledges a public form post.
// @Description Public form acknowledgement
type SubmissionResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Message sent successfully! We will get back to you soon."`
}

// ErrorResponse represents an error response
// @Description Error information
type ErrorResponse struct {
	Success bool `json:"success" example:"false"`

	// Error code
	Code string `json:"code" example:"VALIDATION_ERROR"`

	// Error message
	Message string `json:"message" example:"Please correct the errors below."`

	// Detailed error information
	Details string `json:"details,omitempty" example:"retry after 30 seconds"`

	// Rejection reasons keyed by form field
	Errors map[string][]string `json:"errors,omitempty"`
}
