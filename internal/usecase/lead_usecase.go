package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"openaria_tracking/internal/domain/entities"
	"openaria_tracking/internal/infrastructure/logging"
	"openaria_tracking/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidLead       = errors.New("invalid lead")
	ErrLeadForwardFailed = errors.New("lead forward failed")
)

const (
	defaultLeadContentName = "Lead Form"
	contactSourcePage      = "contact"
	contactFormTag         = "Contact Form"
)

// ILeadUseCase forwards lead and contact submissions to the CRM.
//
// Forwarding failures are swallowed unless the propagate policy is enabled,
// so the visitor-facing flow keeps succeeding when the CRM is down.
type ILeadUseCase interface {
	Submit(ctx context.Context, lead entities.Lead, meta entities.RequestMeta) error
}

type LeadUseCase struct {
	forwarder         interfaces.ILeadForwarder
	dispatcher        interfaces.IConversionDispatcher
	recorder          interfaces.IDispatchRecorder
	validate          *validator.Validate
	propagateFailures bool
	sourceURL         string
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

// NewLeadUseCase builds the use case. dispatcher and recorder may be nil.
func NewLeadUseCase(forwarder interfaces.ILeadForwarder, dispatcher interfaces.IConversionDispatcher, recorder interfaces.IDispatchRecorder, propagateFailures bool, sourceURL string) *LeadUseCase {
	return &LeadUseCase{
		forwarder:         forwarder,
		dispatcher:        dispatcher,
		recorder:          recorder,
		validate:          validator.New(),
		propagateFailures: propagateFailures,
		sourceURL:         sourceURL,
	}
}

func (u *LeadUseCase) Submit(ctx context.Context, lead entities.Lead, meta entities.RequestMeta) error {
	lead = normalizeLead(lead)
	logger := logging.FromContext(ctx).WithFields(log.Fields{
		"email":       logging.MaskEmail(lead.Email),
		"source_page": lead.SourcePage,
		"tags":        lead.TagsJoined(),
	})

	if err := u.validate.Struct(lead); err != nil {
		logger.WithError(err).Warn("[lead] validation failed")
		return fmt.Errorf("%w: %v", ErrInvalidLead, err)
	}
	if u.forwarder == nil {
		return errors.New("lead forwarder not configured")
	}

	name := conversionName(lead)
	if err := u.forwarder.Forward(ctx, lead); err != nil {
		u.record(ctx, dispatchTargetCRM, string(name), interfaces.OutcomeFailure)
		if u.propagateFailures {
			logger.WithError(err).Error("[lead] forward failed")
			return fmt.Errorf("%w: %v", ErrLeadForwardFailed, err)
		}
		logger.WithError(err).Warn("[lead] forward failed; reporting success")
	} else {
		u.record(ctx, dispatchTargetCRM, string(name), interfaces.OutcomeSuccess)
		logger.Info("[lead] forwarded")
	}

	u.trackConversion(ctx, logger, name, lead, meta)
	return nil
}

// conversionName picks Contact for contact-form submissions, Lead otherwise.
func conversionName(lead entities.Lead) entities.EventName {
	if lead.SourcePage == contactSourcePage {
		return entities.EventContact
	}
	return entities.EventLead
}

// trackConversion sends the matching ads conversion. Failures are only logged.
func (u *LeadUseCase) trackConversion(ctx context.Context, logger *log.Entry, name entities.EventName, lead entities.Lead, meta entities.RequestMeta) {
	if u.dispatcher == nil {
		return
	}
	contentName := lead.SourcePage
	if contentName == "" {
		contentName = defaultLeadContentName
	}
	var extra map[string]any
	if lead.SelectedPlan != "" {
		extra = map[string]any{"content_category": lead.SelectedPlan}
	}

	event := entities.ConversionEvent{
		Name:       name,
		OccurredAt: time.Now().Unix(),
		SourceURL:  u.sourceURL,
		EventID:    newEventID(name),
		Identity:   entities.NewIdentity(lead.Email, lead.Phone, meta),
		Attributes: entities.Attributes{ContentName: contentName, Extra: extra},
	}
	if err := u.dispatcher.Dispatch(ctx, event); err != nil {
		u.record(ctx, dispatchTargetFacebook, string(name), interfaces.OutcomeFailure)
		logger.WithError(err).Warn("[lead] conversion dispatch failed")
		return
	}
	u.record(ctx, dispatchTargetFacebook, string(name), interfaces.OutcomeSuccess)
}

func (u *LeadUseCase) record(ctx context.Context, target, eventName, outcome string) {
	if u.recorder != nil {
		u.recorder.Record(ctx, target, eventName, outcome)
	}
}

func normalizeLead(l entities.Lead) entities.Lead {
	l.FirstName = strings.TrimSpace(l.FirstName)
	l.LastName = strings.TrimSpace(l.LastName)
	l.Email = strings.TrimSpace(l.Email)
	l.Phone = strings.TrimSpace(l.Phone)
	l.BusinessType = strings.TrimSpace(l.BusinessType)
	l.SelectedPlan = strings.TrimSpace(l.SelectedPlan)
	l.SourcePage = strings.TrimSpace(l.SourcePage)
	l.Message = strings.TrimSpace(l.Message)

	tags := make([]string, 0, len(l.Tags))
	for _, t := range l.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	l.Tags = tags
	return l
}

// LeadFromContact maps a contact form submission onto a CRM lead.
func LeadFromContact(name, email, subject, message string) entities.Lead {
	first, last := entities.SplitFullName(name)
	tags := []string{contactFormTag}
	if s := strings.TrimSpace(subject); s != "" {
		tags = append(tags, "Subject: "+s)
	}
	return entities.Lead{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		SourcePage: contactSourcePage,
		Message:    message,
		Tags:       tags,
	}
}
