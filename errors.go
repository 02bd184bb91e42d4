package proforma

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every error caused by inputs that break the
// calculator preconditions.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsolvable is wrapped by the reasons an IRR could not be determined.
// It is never returned by Compute, it is carried by the IRR value instead.
var ErrUnsolvable = errors.New("IRR calculation failed")

var (
	// ErrNoSignChange reports a series whose non-zero flows all have the
	// same sign: its NPV has no root.
	ErrNoSignChange = fmt.Errorf("%w: cash flows never change sign", ErrUnsolvable)
	// ErrNoConvergence reports that the solver gave up.
	ErrNoConvergence = fmt.Errorf("%w: solver did not converge", ErrUnsolvable)
)
