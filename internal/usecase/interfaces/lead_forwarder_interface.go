package interfaces

import (
	"context"
	"openaria_tracking/internal/domain/entities"
)

// ILeadForwarder pushes a lead into the CRM inbound webhook.

type ILeadForwarder interface {
	Forward(ctx context.Context, lead entities.Lead) error
}
