package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"openaria_tracking/internal/config"
	"openaria_tracking/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

const testSecret = "whsec_test_secret"

func signHeader(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts.Unix())
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeSignatureVerifier_Verify(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	v := NewStripeSignatureVerifier(config.StripeConfig{WebhookSecret: testSecret, WebhookTolerance: 5 * time.Minute})

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, v.Verify(payload, signHeader(payload, testSecret, time.Now())))
	})

	t.Run("wrong secret", func(t *testing.T) {
		err := v.Verify(payload, signHeader(payload, "whsec_other", time.Now()))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		header := signHeader(payload, testSecret, time.Now())
		err := v.Verify([]byte(`{"id":"evt_2","type":"checkout.session.completed"}`), header)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("expired timestamp", func(t *testing.T) {
		err := v.Verify(payload, signHeader(payload, testSecret, time.Now().Add(-time.Hour)))
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("malformed header", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(payload, "garbage"), ErrInvalidSignature)
	})
}

func TestStripeSignatureVerifier_MissingSecret(t *testing.T) {
	payload := []byte(`{}`)
	v := NewStripeSignatureVerifier(config.StripeConfig{})

	err := v.Verify(payload, signHeader(payload, testSecret, time.Now()))
	assert.ErrorIs(t, err, entities.ErrVerifierNotConfigured)
	assert.NotErrorIs(t, err, ErrInvalidSignature)
}
