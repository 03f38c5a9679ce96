package voyageai

import "errors"

// ErrBatchTooLarge is returned by Generate before any network call when
// the input exceeds the configured batch ceiling. Match with errors.Is.
var ErrBatchTooLarge = errors.New("voyageai: batch exceeds the maximum batch size")
