package is456

import "fmt"

// RangeError reports an input outside the domain the code tables support.
// It is a caller error and always aborts the single design call.
type RangeError struct {
	Field   string
	Value   float64
	Allowed string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %g outside supported range (%s)", e.Field, e.Value, e.Allowed)
}
