// Package schemas holds the embedded JSON Schemas for fieldlens documents.
package schemas

import _ "embed"

// RunSchemaJSON is the JSON Schema for run files.
//
//go:embed run.schema.json
var RunSchemaJSON string
