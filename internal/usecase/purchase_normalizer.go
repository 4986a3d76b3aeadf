package usecase

import (
	"time"

	"openaria_tracking/internal/domain/entities"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// IPurchaseNormalizer turns a verified provider event into a conversion event.
// ok=false means the event is not a purchase and nothing should be sent.
type IPurchaseNormalizer interface {
	Normalize(evt entities.ProviderEvent, meta entities.RequestMeta) (event entities.ConversionEvent, ok bool, err error)
}

type PurchaseNormalizer struct {
	sourceURL  string
	now        func() time.Time
	newEventID func(entities.EventName) string
}

var _ IPurchaseNormalizer = (*PurchaseNormalizer)(nil)

func NewPurchaseNormalizer(sourceURL string) *PurchaseNormalizer {
	return &PurchaseNormalizer{sourceURL: sourceURL, now: time.Now, newEventID: newEventID}
}

func (n *PurchaseNormalizer) Normalize(evt entities.ProviderEvent, meta entities.RequestMeta) (entities.ConversionEvent, bool, error) {
	fields := log.Fields{"event_id": evt.ID, "event_type": evt.Type}

	switch evt.Type {
	case entities.StripeEventCheckoutCompleted:
		session, err := evt.CheckoutSession()
		if err != nil {
			return entities.ConversionEvent{}, false, err
		}
		amountMinor := *session.AmountTotal
		value := entities.MinorToMajor(amountMinor)
		currency := entities.NormalizeCurrency(session.Currency)
		plan := entities.ClassifyPlan(session.PlanName(), amountMinor)

		var extra map[string]any
		if session.ID != "" {
			extra = map[string]any{"order_id": session.ID}
		}

		log.WithFields(fields).WithFields(log.Fields{
			"plan":      plan,
			"amount":    value,
			"currency":  currency,
			"has_email": session.Email() != "",
		}).Info("purchase completed")

		return entities.ConversionEvent{
			Name:       entities.EventPurchase,
			OccurredAt: n.now().Unix(),
			SourceURL:  n.sourceURL,
			EventID:    n.newEventID(entities.EventPurchase),
			Identity:   entities.NewIdentity(session.Email(), session.Phone(), meta),
			Attributes: entities.Attributes{
				Currency:    currency,
				Value:       &value,
				ContentName: plan,
				Extra:       extra,
			},
		}, true, nil

	case entities.StripeEventPaymentIntentSucceeded:
		// Checkout sessions already produce the purchase; intents are only logged.
		pi, err := evt.PaymentIntent()
		if err != nil {
			return entities.ConversionEvent{}, false, err
		}
		log.WithFields(fields).WithFields(log.Fields{
			"amount":   entities.MinorToMajor(*pi.Amount),
			"currency": pi.Currency,
		}).Info("payment succeeded")
		return entities.ConversionEvent{}, false, nil

	default:
		log.WithFields(fields).Debug("event ignored")
		return entities.ConversionEvent{}, false, nil
	}
}

func newEventID(name entities.EventName) string {
	return string(name) + "_" + uuid.NewString()
}
