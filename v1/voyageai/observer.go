package voyageai

import (
	"time"

	"github.com/vektorlabs/embeddings/v1/observability"
)

// observeOperation notifies the observer about a completed operation if
// one is configured.
//
// Notes:
//   - resource: the model the operation ran against
//   - size: the number of texts in the batch
func (c *Client) observeOperation(operation string, duration time.Duration, err error, size int64) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "voyageai",
		Operation:   operation,
		Resource:    c.cfg.Model,
		SubResource: string(c.cfg.InputType),
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
