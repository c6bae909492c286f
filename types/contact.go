package types

import "time"

// InterestArea is the business line a contact message is addressed to.
type InterestArea string

const (
	InterestTextiles    InterestArea = "gk_textiles"
	InterestSteels      InterestArea = "gk_steels"
	InterestGeneral     InterestArea = "general"
	InterestPartnership InterestArea = "partnership"
	InterestFeedback    InterestArea = "feedback"
)

// InterestAreas lists every accepted interest area in display order.
var InterestAreas = []InterestArea{
	InterestTextiles,
	InterestSteels,
	InterestGeneral,
	InterestPartnership,
	InterestFeedback,
}

// Label returns the human readable name shown to operators.
func (a InterestArea) Label() string {
	switch a {
	case InterestTextiles:
		return "GK Textiles"
	case InterestSteels:
		return "GK Steels"
	case InterestGeneral:
		return "General Inquiry"
	case InterestPartnership:
		return "Partnership"
	case InterestFeedback:
		return "Feedback"
	default:
		return string(a)
	}
}

// IsValid reports whether a is one of the known interest areas.
func (a InterestArea) IsValid() bool {
	for _, known := range InterestAreas {
		if a == known {
			return true
		}
	}
	return false
}

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
	Subject      string       `json:"subject"`
	InterestArea InterestArea `json:"interest_area"`
	Message      string       `json:"message"`
	IPAddress    string       `json:"ip_address,omitempty"`
	UserAgent    string       `json:"user_agent,omitempty"`
	IsRead       bool         `json:"is_read"`
	IsArchived   bool         `json:"is_archived"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FieldValue returns the value of a column by its stored name, for the
// generic admin table renderer.
func (m ContactMessage) FieldValue(field string) (interface{}, bool) {
	switch field {
	case "id":
		return m.ID, true
	case "name":
		return m.Name, true
	case "email":
		return m.Email, true
	case "phone":
		return m.Phone, true
	case "subject":
		return m.Subject, true
	case "interest_area":
		return m.InterestArea, true
	case "message":
		return m.Message, true
	case "ip_address":
		return m.IPAddress, true
	case "user_agent":
		return m.UserAgent, true
	case "is_read":
		return m.IsRead, true
	case "is_archived":
		return m.IsArchived, true
	case "created_at":
		return m.CreatedAt, true
	case "updated_at":
		return m.UpdatedAt, true
	}
	return nil, false
}

// ContactSubmission is the raw contact form as posted by a visitor.
// Validation happens in the validation package, not through binding tags,
// so that every failing field is reported at once.
type ContactSubmission struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Subject      string `json:"subject" form:"subject"`
	InterestArea string `json:"interest_area" form:"interest_area"`
	Message      string `json:"message" form:"message"`
}

// MessageFilter narrows an admin listing of contact messages.
// Nil pointers leave the corresponding flag unfiltered.
type MessageFilter struct {
	IsRead       *bool
	IsArchived   *bool
	InterestArea InterestArea
	// CreatedSince keeps messages created at or after this instant when non-zero.
	CreatedSince time.Time
	Search       string
	// SearchFields names the columns Search is matched against. Empty means
	// the store's default set.
	SearchFields []string
	Page         int
	PageSize     int
}

// Offset returns the row offset for the filter's page (pages start at 1).
func (f MessageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// MessageAction is a bulk status change applied by an operator.
type MessageAction string

const (
	ActionMarkRead   MessageAction = "mark_read"
	ActionMarkUnread MessageAction = "mark_unread"
	ActionArchive    MessageAction = "archive"
)

// IsValid reports whether act is a supported bulk action.
func (act MessageAction) IsValid() bool {
	switch act {
	case ActionMarkRead, ActionMarkUnread, ActionArchive:
		return true
	}
	return false
}

// MessageActionRequest is the request body for bulk status changes.
type MessageActionRequest struct {
	IDs    []string      `json:"ids" binding:"required,min=1,max=500,dive,uuid"`
	Action MessageAction `json:"action" binding:"required"`
}

// MessageActionResult reports how many messages an action touched.
type MessageActionResult struct {
	Action  MessageAction `json:"action"`
	Updated int64         `json:"updated"`
}
