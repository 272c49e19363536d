package api

import (
	"fmt"
)

// JSONNotHash creates an error with a descriptive text and returns it.
func JSONNotHash(path string) error {
	return fmt.Errorf(`file '%s' does not contain a JSON object`, path)
}

// MissingRequiredOption creates an error with a descriptive text and returns it.
func MissingRequiredOption(option string) error {
	return fmt.Errorf(`missing required provider option '%s'`, option)
}

// MissingRequiredEnvironmentVariable creates an error with a descriptive text and returns it.
func MissingRequiredEnvironmentVariable(name string) error {
	return fmt.Errorf(`missing required environment variable '%s'`, name)
}

// NameNotFound creates an error with a descriptive text and returns it.
func NameNotFound(name string) error {
	return fmt.Errorf(`lookup() did not find a value for the name '%s'`, name)
}

// RequestNotFound creates an error with a descriptive text and returns it.
func RequestNotFound(request string) error {
	return fmt.Errorf(`no value was found for the request '%s'`, request)
}

// YamlNotHash creates an error with a descriptive text and returns it.
func YamlNotHash(path string) error {
	return fmt.Errorf(`file '%s' does not contain a YAML hash`, path)
}
