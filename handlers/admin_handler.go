package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/diljithmon170/GK-Group/admin"
	"github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/middleware"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	messagesTable      = "messages"
	subscriptionsTable = "subscriptions"
)

// AdminHandler serves the operator review surface. Listings are driven by
// the table definitions in the admin registry.
type AdminHandler struct {
	contactService    ContactServiceInterface
	newsletterService NewsletterServiceInterface
	tables            *admin.Registry
	now               func() time.Time
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(contactService ContactServiceInterface, newsletterService NewsletterServiceInterface, tables *admin.Registry) *AdminHandler {
	return &AdminHandler{
		contactService:    contactService,
		newsletterService: newsletterService,
		tables:            tables,
		now:               time.Now,
	}
}

// ListTablesHandler godoc
// @Summary List admin table definitions
// @Tags admin
// @Produce json
// @Success 200 {array} admin.Table
// @Failure 401 {object} docs.ErrorResponse "Missing or invalid admin token"
// @Router /admin/tables [get]
// @Security BearerAuth
func (h *AdminHandler) ListTablesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.tables.Tables())
}

// ListMessagesHandler godoc
// @Summary List contact messages
// @Description Filters and search come from the messages table definition.
// @Description format=html returns a rendered page instead of JSON.
// @Tags admin
// @Produce json,html
// @Param is_read query string false "true or false"
// @Param is_archived query string false "true or false"
// @Param interest_area query string false "Interest area"
// @Param created_at query string false "today, past_7_days, this_month or this_year"
// @Param search query string false "Matches name, email, subject and message"
// @Param page query int false "Page number" default(1)
// @Param format query string false "json or html"
// @Success 200 {object} admin.Listing
// @Failure 400 {object} docs.ErrorResponse "Invalid filter value"
// @Failure 401 {object} docs.ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Router /admin/messages [get]
// @Security BearerAuth
func (h *AdminHandler) ListMessagesHandler(c *gin.Context) {
	table, q, ok := h.parseListing(c, messagesTable)
	if !ok {
		return
	}

	filter := types.MessageFilter{
		IsRead:       q.Bool("is_read"),
		IsArchived:   q.Bool("is_archived"),
		InterestArea: types.InterestArea(q.String("interest_area")),
		CreatedSince: q.Since("created_at", h.now()),
		Search:       q.Search,
		SearchFields: table.SearchFields,
		Page:         q.Page,
		PageSize:     table.PageSize,
	}

	msgs, page, err := h.contactService.ListMessages(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if wantsHTML(c) {
		renderListing(c, table, msgs, q, page)
		return
	}
	c.JSON(http.StatusOK, admin.Project(table, msgs, page))
}

// GetMessageHandler godoc
// @Summary Get one contact message
// @Tags admin
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} types.ContactMessage
// @Failure 400 {object} docs.ErrorResponse "Malformed ID"
// @Failure 401 {object} docs.ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} docs.ErrorResponse "Message not found"
// @Router /admin/messages/{id} [get]
// @Security BearerAuth
func (h *AdminHandler) GetMessageHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid message ID", "id must be a UUID"))
		return
	}

	msg, err := h.contactService.GetMessage(c.Request.Context(), id.String())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// UpdateMessagesHandler godoc
// @Summary Apply a bulk action to contact messages
// @Tags admin
// @Accept json
// @Produce json
// @Param request body types.MessageActionRequest true "Message IDs and action"
// @Success 200 {object} types.MessageActionResult
// @Failure 400 {object} docs.ErrorResponse "Invalid IDs or action"
// @Failure 401 {object} docs.ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Router /admin/messages/actions [post]
// @Security BearerAuth
func (h *AdminHandler) UpdateMessagesHandler(c *gin.Context) {
	var req types.MessageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.Wrap(err, errors.ValidationError, "Invalid request body"))
		return
	}

	table, ok := h.table(c, messagesTable)
	if !ok {
		return
	}
	if !table.HasAction(string(req.Action)) {
		_ = c.Error(errors.ValidationFailed("Unknown action", string(req.Action)))
		return
	}

	updated, err := h.contactService.UpdateStatus(c.Request.Context(), req.IDs, req.Action)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.GetLogger().Infow("Admin action applied",
		"admin_id", c.GetString(middleware.AdminIDKey),
		"action", req.Action,
		"requested", len(req.IDs),
		"updated", updated)

	c.JSON(http.StatusOK, types.MessageActionResult{Action: req.Action, Updated: updated})
}

// ListSubscriptionsHandler godoc
// @Summary List newsletter subscriptions
// @Tags admin
// @Produce json,html
// @Param created_at query string false "today, past_7_days, this_month or this_year"
// @Param search query string false "Matches email"
// @Param page query int false "Page number" default(1)
// @Param format query string false "json or html"
// @Success 200 {object} admin.Listing
// @Failure 400 {object} docs.ErrorResponse "Invalid filter value"
// @Failure 401 {object} docs.ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} docs.ErrorResponse "Internal server error"
// @Router /admin/subscriptions [get]
// @Security BearerAuth
func (h *AdminHandler) ListSubscriptionsHandler(c *gin.Context) {
	table, q, ok := h.parseListing(c, subscriptionsTable)
	if !ok {
		return
	}

	filter := types.SubscriptionFilter{
		CreatedSince: q.Since("created_at", h.now()),
		Search:       q.Search,
		SearchFields: table.SearchFields,
		Page:         q.Page,
		PageSize:     table.PageSize,
	}

	subs, page, err := h.newsletterService.ListSubscriptions(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if wantsHTML(c) {
		renderListing(c, table, subs, q, page)
		return
	}
	c.JSON(http.StatusOK, admin.Project(table, subs, page))
}

func (h *AdminHandler) table(c *gin.Context, name string) (*admin.Table, bool) {
	table, ok := h.tables.Table(name)
	if !ok {
		logger.GetLogger().Errorw("Admin table definition missing", "table", name)
		_ = c.Error(errors.InternalServerError("Admin table unavailable"))
		return nil, false
	}
	return table, true
}

func (h *AdminHandler) parseListing(c *gin.Context, name string) (*admin.Table, admin.Query, bool) {
	table, ok := h.table(c, name)
	if !ok {
		return nil, admin.Query{}, false
	}
	q, err := table.ParseQuery(c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return nil, admin.Query{}, false
	}
	return table, q, true
}

func wantsHTML(c *gin.Context) bool {
	return c.Query("format") == "html"
}

func renderListing[R admin.Row](c *gin.Context, table *admin.Table, rows []R, q admin.Query, page *types.PageInfo) {
	var buf bytes.Buffer
	if err := admin.RenderHTML(&buf, table, rows, q, page); err != nil {
		_ = c.Error(errors.Wrap(err, errors.ServerError, "Failed to render listing"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
