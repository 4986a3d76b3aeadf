package usecase

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/pkg/hashing"
)

func newTestNormalizer() *PurchaseNormalizer {
	n := NewPurchaseNormalizer("https://openaria.app")
	n.now = func() time.Time { return time.Unix(1700000000, 0) }
	n.newEventID = func(name entities.EventName) string { return string(name) + "_fixed" }
	return n
}

func mustParse(t *testing.T, raw string) entities.ProviderEvent {
	t.Helper()
	evt, err := entities.ParseProviderEvent([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return evt
}

func TestPurchaseNormalizer_Normalize_Checkout(t *testing.T) {
	n := newTestNormalizer()
	meta := entities.RequestMeta{ClientIP: "203.0.113.7", UserAgent: "Mozilla/5.0"}

	t.Run("growth plan from amount", func(t *testing.T) {
		evt := mustParse(t, `{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","amount_total":99700,"currency":"usd","customer_details":{"email":"Buyer@Example.com "}}}}`)

		got, ok, err := n.Normalize(evt, meta)
		if err != nil || !ok {
			t.Fatalf("expected purchase, ok=%v err=%v", ok, err)
		}
		if got.Name != entities.EventPurchase {
			t.Fatalf("expected Purchase, got %s", got.Name)
		}
		if got.Attributes.Value == nil || *got.Attributes.Value != 997 {
			t.Fatalf("expected value 997, got %v", got.Attributes.Value)
		}
		if got.Attributes.Currency != "USD" {
			t.Fatalf("expected USD, got %s", got.Attributes.Currency)
		}
		if got.Attributes.ContentName != "Growth Plan" {
			t.Fatalf("expected Growth Plan, got %s", got.Attributes.ContentName)
		}
		if got.Identity.HashedEmail != hashing.Hash("buyer@example.com") {
			t.Fatalf("unexpected hashed email %s", got.Identity.HashedEmail)
		}
		if got.Identity.ClientIP != "203.0.113.7" || got.Identity.UserAgent != "Mozilla/5.0" {
			t.Fatalf("request meta not copied: %+v", got.Identity)
		}
		if got.OccurredAt != 1700000000 || got.SourceURL != "https://openaria.app" || got.EventID != "Purchase_fixed" {
			t.Fatalf("unexpected envelope: %+v", got)
		}
		if got.Attributes.Extra["order_id"] != "cs_1" {
			t.Fatalf("expected order_id, got %v", got.Attributes.Extra)
		}
	})

	t.Run("metadata plan wins over amount", func(t *testing.T) {
		evt := mustParse(t, `{"type":"checkout.session.completed","data":{"object":{"amount_total":50000,"currency":"eur","metadata":{"plan_name":"Custom Plan"},"customer_email":"a@b.co"}}}`)

		got, ok, err := n.Normalize(evt, meta)
		if err != nil || !ok {
			t.Fatalf("expected purchase, ok=%v err=%v", ok, err)
		}
		if got.Attributes.ContentName != "Custom Plan" || *got.Attributes.Value != 500 || got.Attributes.Currency != "EUR" {
			t.Fatalf("unexpected attributes: %+v", got.Attributes)
		}
		if got.Identity.HashedEmail != hashing.Hash("a@b.co") {
			t.Fatalf("expected customer_email fallback, got %s", got.Identity.HashedEmail)
		}
	})

	t.Run("unknown amount and missing currency", func(t *testing.T) {
		evt := mustParse(t, `{"type":"checkout.session.completed","data":{"object":{"amount_total":1234}}}`)

		got, ok, err := n.Normalize(evt, entities.RequestMeta{})
		if err != nil || !ok {
			t.Fatalf("expected purchase, ok=%v err=%v", ok, err)
		}
		if got.Attributes.ContentName != "Unknown Plan" || got.Attributes.Currency != "USD" {
			t.Fatalf("unexpected attributes: %+v", got.Attributes)
		}
		if got.Identity.HashedEmail != "" {
			t.Fatalf("expected no email, got %s", got.Identity.HashedEmail)
		}
	})

	t.Run("missing amount fails closed", func(t *testing.T) {
		evt := mustParse(t, `{"type":"checkout.session.completed","data":{"object":{"currency":"usd"}}}`)

		_, ok, err := n.Normalize(evt, meta)
		var perr *entities.ParseError
		if ok || !errors.As(err, &perr) || perr.Field != "amount_total" {
			t.Fatalf("expected ParseError on amount_total, ok=%v err=%v", ok, err)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		raw := `{"type":"checkout.session.completed","data":{"object":{"amount_total":9700,"currency":"usd"}}}`
		evt := mustParse(t, raw)
		before := string(evt.Data.Object)

		if _, _, err := n.Normalize(evt, meta); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(evt.Data.Object) != before {
			t.Fatalf("input mutated")
		}
	})
}

func TestPurchaseNormalizer_Normalize_NonPurchase(t *testing.T) {
	n := newTestNormalizer()

	t.Run("payment intent is a no-op", func(t *testing.T) {
		evt := mustParse(t, `{"type":"payment_intent.succeeded","data":{"object":{"amount":99700,"currency":"usd"}}}`)
		_, ok, err := n.Normalize(evt, entities.RequestMeta{})
		if ok || err != nil {
			t.Fatalf("expected skip, ok=%v err=%v", ok, err)
		}
	})

	t.Run("payment intent without amount", func(t *testing.T) {
		evt := mustParse(t, `{"type":"payment_intent.succeeded","data":{"object":{"currency":"usd"}}}`)
		_, _, err := n.Normalize(evt, entities.RequestMeta{})
		var perr *entities.ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("other events are skipped", func(t *testing.T) {
		evt := mustParse(t, `{"type":"customer.created","data":{"object":{}}}`)
		_, ok, err := n.Normalize(evt, entities.RequestMeta{})
		if ok || err != nil {
			t.Fatalf("expected skip, ok=%v err=%v", ok, err)
		}
	})
}

func TestNewEventID(t *testing.T) {
	id := newEventID(entities.EventLead)
	if !strings.HasPrefix(id, "Lead_") || len(id) != len("Lead_")+36 {
		t.Fatalf("unexpected event id %q", id)
	}
	if id == newEventID(entities.EventLead) {
		t.Fatalf("expected unique ids")
	}
}

func TestPurchaseNormalizer_DefaultClock(t *testing.T) {
	n := NewPurchaseNormalizer("https://openaria.app")
	evt := entities.ProviderEvent{Type: entities.StripeEventCheckoutCompleted}
	evt.Data.Object = json.RawMessage(`{"amount_total":49700}`)

	got, ok, err := n.Normalize(evt, entities.RequestMeta{})
	if err != nil || !ok {
		t.Fatalf("expected purchase, ok=%v err=%v", ok, err)
	}
	if got.Attributes.ContentName != "Starter Plan" {
		t.Fatalf("expected Starter Plan, got %s", got.Attributes.ContentName)
	}
	if time.Since(time.Unix(got.OccurredAt, 0)) > time.Minute {
		t.Fatalf("event time not current: %d", got.OccurredAt)
	}
}
