package interfaces

// IWebhookVerifier authenticates a raw webhook body against its signature header.
type IWebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) error
}
