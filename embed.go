// Package phonebook provides embedded runtime resources.
package phonebook

import _ "embed"

// ExampleConfig is a commented config file covering every supported key.
//
//go:embed templates/config.yaml
var ExampleConfig []byte
