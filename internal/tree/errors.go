package tree

import "fmt"

// InvalidShapeError reports a node that is present but fundamentally not
// traversable where the document requires a map or sequence. It aborts the
// transformation of the current document.
type InvalidShapeError struct {
	Path  string
	Value any
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid source shape at %s: expected map or sequence, got %T", e.Path, e.Value)
}
