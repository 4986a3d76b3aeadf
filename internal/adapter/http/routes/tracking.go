package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathStripeWebhook       = "/webhooks/stripe"
	PathLegacyStripeWebhook = "/api/stripe-webhook"
	PathLeads               = "/leads"
	PathContact             = "/contact"
	PathEvents              = "/events"
)

func addTrackingRoutes(rg *gin.RouterGroup, h routeHandlers) {
	rg.POST(PathStripeWebhook, h.webhook.Receive)

	rg.POST(PathLeads, h.leads.SubmitLead)
	rg.POST(PathContact, h.leads.SubmitContact)

	rg.POST(PathEvents, h.tracking.TrackEvent)
}
