package interfaces

import (
	"context"
	"openaria_tracking/internal/domain/entities"
)

// IConversionDispatcher delivers one conversion event to the ads platform.
//
// Implementations perform a single attempt; callers decide what a failure means.
type IConversionDispatcher interface {
	Dispatch(ctx context.Context, event entities.ConversionEvent) error
}
