package minikanren

import "github.com/pkg/errors"

// errRealizeInvariant and errUnknownStreamKind guard contract violations
// that should be unreachable from correct use of this package. They are
// programmer errors, not part of the ordinary control flow —
// unification failure and non-termination are handled separately and
// never reach these panics.
var (
	errRealizeInvariant  = errors.New("minikanren: Realize produced an immature stream")
	errUnknownStreamKind = errors.New("minikanren: stream has an unrecognized kind")
)
