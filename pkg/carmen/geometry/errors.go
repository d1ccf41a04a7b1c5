package geometry

import "fmt"

// ValidationError reports a profile that parsed but violates the schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("geometry profile: %s: %s", e.Field, e.Message)
}
