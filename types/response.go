package types

// SubmissionResponse is returned by the public form endpoints.
type SubmissionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// PageInfo contains pagination information
type PageInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewPageInfo builds a PageInfo from a page number, page size and row total.
func NewPageInfo(page, perPage int, total int64) *PageInfo {
	if page < 1 {
		page = 1
	}
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	return &PageInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// PaginatedResponse is a helper for paginated data responses
type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	Pagination *PageInfo   `json:"pagination"`
}

// ErrorResponse is the body written by the error handler middleware.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details string              `json:"details,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
