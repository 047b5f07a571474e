package models

// InboundSMS is the validated form of a provider inbound-message webhook.
// Unparseable payloads are rejected at the HTTP boundary and never reach
// the resolver.
type InboundSMS struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Body       string `json:"body"`
	ExternalID string `json:"external_id"`
}

// StatusCallback is the validated form of a provider delivery-status webhook.
type StatusCallback struct {
	ExternalID string        `json:"external_id"`
	Status     MessageStatus `json:"status"`
	ErrorCode  string        `json:"error_code,omitempty"`
}

// MessageListResponse is the paginated payload of the messages API.
type MessageListResponse struct {
	Messages   []*Message `json:"messages"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// ErrorResponse is the JSON error body returned by API handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
