package handlers

import (
	"net/http"

	"github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/gin-gonic/gin"
)

const contactSuccessMessage = "Message sent successfully! We will get back to you soon."

// ContactHandler serves the public contact form.
type ContactHandler struct {
	contactService ContactServiceInterface
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contactService ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContactHandler godoc
// @Summary Submit the contact form
// @Description Validates and stores a contact message. Accepts JSON or a urlencoded form.
// @Description Every invalid field is reported with its reasons.
// @Tags public
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body docs.ContactRequest true "Contact form"
// @Success 201 {object} docs.SubmissionResponse "Message stored"
// @Failure 400 {object} docs.ErrorResponse "One or more fields were rejected"
// @Failure 429 {object} docs.ErrorResponse "Too many submissions"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Router /api/contact [post]
// @Router /api/contact-ajax/ [post]
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var sub types.ContactSubmission
	if err := c.ShouldBind(&sub); err != nil {
		_ = c.Error(errors.Wrap(err, errors.ValidationError, "Invalid request body"))
		return
	}

	if _, err := h.contactService.Submit(c.Request.Context(), sub, c.ClientIP(), c.Request.UserAgent()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, types.SubmissionResponse{
		Success: true,
		Message: contactSuccessMessage,
	})
}
