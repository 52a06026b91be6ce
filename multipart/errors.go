package multipart

import "errors"

// ErrPendingPart wraps the failure of a pending part's future. The encode
// operation as a whole has failed: the encoder keeps returning the same
// error and cannot be reused, so retrying means building a fresh Encoder.
var ErrPendingPart = errors.New("multipart: pending part failed")
