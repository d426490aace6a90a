package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a guarded write's
// condition no longer holds (stock counter moved, payment already
// cancelled, order status changed underneath). Usecases translate it into
// the caller-facing error for their context, usually after re-reading.
var ErrConditionFailed = errors.New("guarded write condition failed")
