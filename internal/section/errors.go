package section

// GeometryError reports internally inconsistent section dimensions.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string {
	return "invalid geometry: " + e.msg
}

// NewGeometryError builds a GeometryError with the given detail.
func NewGeometryError(msg string) *GeometryError {
	return &GeometryError{msg}
}
