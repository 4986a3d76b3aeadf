package interfaces

import "context"

// Dispatch outcomes reported to an IDispatchRecorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

type IDispatchRecorder interface {
	Record(ctx context.Context, target, eventName, outcome string)
}
