package api

// Sensitive wraps a value so that its content is not revealed in string
// representations, logs, or explanations
type Sensitive struct {
	value any
}

// NewSensitive wraps the given value in a Sensitive
func NewSensitive(v any) Sensitive {
	return Sensitive{value: v}
}

// Unwrap returns the wrapped value
func (s Sensitive) Unwrap() any {
	return s.value
}

func (s Sensitive) String() string {
	return `sensitive [value redacted]`
}
