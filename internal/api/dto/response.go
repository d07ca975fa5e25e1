package dto

// Response is the envelope wrapping every API payload.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// PageResponse wraps paged collection payloads.
type PageResponse struct {
	Content    interface{} `json:"content"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalItems int64       `json:"totalItems"`
}
