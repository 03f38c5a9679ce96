package observability

import "time"

// OperationContext carries everything an observer needs to know about a
// single completed operation.
type OperationContext struct {
	// Component is the package emitting the observation, e.g. "voyageai".
	Component string

	// Operation is the logical operation name, e.g. "generate".
	Operation string

	// Resource identifies what the operation acted on, e.g. a model name.
	Resource string

	// SubResource carries additional context, e.g. an input type.
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is the operation's error, nil on success.
	Error error

	// Size is an operation-specific magnitude, e.g. batch size.
	Size int64

	// Metadata holds any extra key/value context.
	Metadata map[string]interface{}
}

// Observer receives operation observations from instrumented clients.
// Implementations must be safe for concurrent use; clients may emit from
// multiple goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
