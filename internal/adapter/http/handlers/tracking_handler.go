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

var errInvalidTrackingPayload = pkg.NewDomainErrorSimple("INVALID_TRACKING_EVENT", "Invalid tracking event", http.StatusBadRequest)

// TrackingHandler is the server-side counterpart of the browser pixel.
type TrackingHandler struct {
	usecase usecase.ITrackingUseCase
}

func NewTrackingHandler(uc usecase.ITrackingUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc}
}

// TrackEvent godoc
// @Summary      Track a conversion event server-side
// @Description  Dispatch failures are reported as success=false with status 200.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      request.TrackingEventRequest  true  "Event"
// @Success      200    {object}  response.SubmissionResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /events [post]
func (h *TrackingHandler) TrackEvent(c *gin.Context) {
	var payload request.TrackingEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return
	}

	evt, err := h.usecase.Track(c.Request.Context(), payload.ToTrackingEvent(), requestMeta(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTrackingEvent) {
			appErr := pkg.NewDomainError(errInvalidTrackingPayload.Code, errInvalidTrackingPayload.Message, err, http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.SubmissionResponse{Success: false, Error: err.Error(), EventID: evt.EventID})
		return
	}

	c.JSON(http.StatusOK, response.SubmissionResponse{Success: true, EventID: evt.EventID})
}
