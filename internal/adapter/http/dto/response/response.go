package response

// WebhookAck is returned to the payment provider for every accepted delivery.
type WebhookAck struct {
	Received bool `json:"received"`
}

// WebhookError keeps the provider-facing error shape {"error": "..."}.
type WebhookError struct {
	Error string `json:"error"`
}

type SubmissionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	EventID string `json:"event_id,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}
