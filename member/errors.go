package member

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// Sentinel errors for the failure classes callers branch on. Each wraps an
// errdefs class, so both errors.Is against these sentinels and the
// errdefs.IsX helpers match across package boundaries.
var (
	// ErrImmutable is returned by every mutating Collection operation.
	// Collections never change after construction.
	ErrImmutable = fmt.Errorf("member collection is immutable: %w", errdefs.ErrNotImplemented)

	// ErrUnsupportedKind is returned when an operation defined for one member
	// kind is invoked on a descriptor of the other kind.
	ErrUnsupportedKind = fmt.Errorf("operation not defined for member kind: %w", errdefs.ErrInvalidArgument)
)
