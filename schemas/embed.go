// Package schemas holds the JSON Schema documents shipped with job-compare.
package schemas

import _ "embed"

// Config is the schema for the JSON configuration file.
//
//go:embed config.schema.json
var Config string
