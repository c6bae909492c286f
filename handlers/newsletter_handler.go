package handlers

import (
	"net/http"

	"github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/gin-gonic/gin"
)

const newsletterSuccessMessage = "Subscribed successfully!"

// NewsletterHandler serves the public newsletter signup.
type NewsletterHandler struct {
	newsletterService NewsletterServiceInterface
}

// NewNewsletterHandler creates a NewsletterHandler.
func NewNewsletterHandler(newsletterService NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// SubscribeHandler godoc
// @Summary Subscribe to the newsletter
// @Description Records an e-mail address. Repeating an address succeeds without a second record.
// @Tags public
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body docs.NewsletterRequest true "Signup"
// @Success 201 {object} docs.SubmissionResponse "New subscription"
// @Success 200 {object} docs.SubmissionResponse "Already subscribed"
// @Failure 400 {object} docs.ErrorResponse "Invalid e-mail address"
// @Failure 429 {object} docs.ErrorResponse "Too many submissions"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Router /api/newsletter [post]
// @Router /api/newsletter/ [post]
func (h *NewsletterHandler) SubscribeHandler(c *gin.Context) {
	var req types.NewsletterSignup
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(errors.Wrap(err, errors.ValidationError, "Invalid request body"))
		return
	}

	created, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, types.SubmissionResponse{
		Success: true,
		Message: newsletterSuccessMessage,
	})
}
