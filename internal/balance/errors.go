package balance

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or invalid balance-config section.
// It is always fatal to the operation that needed the section; the engine
// never substitutes silent defaults for formations, personnel tables, or
// rate tables because that would desynchronize snap accounting.
type ConfigurationError struct {
	Section string
	Key     string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("balance config %s[%s]: %s", e.Section, e.Key, e.Message)
	}
	return fmt.Sprintf("balance config %s: %s", e.Section, e.Message)
}

// AsConfigurationError attempts to unwrap err into a ConfigurationError.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

func missing(section, key string) error {
	return &ConfigurationError{Section: section, Key: key, Message: "not registered"}
}
