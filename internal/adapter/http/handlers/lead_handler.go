package handlers

import (
	"errors"
	"net/http"

	request "openaria_tracking/internal/adapter/http/dto/request"
	response "openaria_tracking/internal/adapter/http/dto/response"
	"openaria_tracking/internal/usecase"
	"openaria_tracking/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload    = pkg.NewDomainErrorSimple("INVALID_LEAD", "Invalid lead payload", http.StatusBadRequest)
	errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT", "Invalid contact payload", http.StatusBadRequest)
)

// LeadHandler handles lead and contact form submissions.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// SubmitLead godoc
// @Summary      Submit a lead
// @Description  Forwards the lead to the CRM inbound webhook and tracks a Lead conversion.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body      request.LeadRequest  true  "Lead"
// @Success      200   {object}  response.SubmissionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Submit(c.Request.Context(), payload.ToEntity(), requestMeta(c)); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubmissionResponse{Success: true})
}

// SubmitContact godoc
// @Summary      Submit the contact form
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        contact  body      request.ContactRequest  true  "Contact message"
// @Success      200      {object}  response.SubmissionResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *LeadHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	lead := usecase.LeadFromContact(payload.Name, payload.Email, payload.Subject, payload.Message)
	if err := h.usecase.Submit(c.Request.Context(), lead, requestMeta(c)); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubmissionResponse{Success: true})
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead):
		return pkg.NewDomainError("INVALID_LEAD", "Invalid lead payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadForwardFailed):
		return pkg.NewDomainError("LEAD_FORWARD_FAILED", "Lead could not be delivered", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
