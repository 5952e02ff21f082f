package matching

import "fmt"

// ConfigurationError is returned when weights or matcher options are invalid.
// Invalid configuration is rejected, never renormalized.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}
