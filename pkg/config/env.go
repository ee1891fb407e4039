package config

import "strings"

// PEDAL_API_URL maps to api-url.
var envReplacer = strings.NewReplacer("-", "_")
