package widgets

import "errors"

var (
	ErrInsufficientHeight = errors.New("insufficient height")
	ErrMissingPlacement   = errors.New("missing placement")
	ErrMissingSink        = errors.New("missing sink")
	ErrMissingRoot        = errors.New("missing root")
)

// LayoutError names the widget a frame failed on.
type LayoutError struct {
	Widget string
	Err    error
}

func (e *LayoutError) Error() string {
	return e.Widget + ": " + e.Err.Error()
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

func layoutError(widget string, err error) error {
	return &LayoutError{Widget: widget, Err: err}
}
