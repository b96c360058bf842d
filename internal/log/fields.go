// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	// Record fields
	FieldSource   = "source"
	FieldIndex    = "index"
	FieldRecordID = "record_id"
	FieldTitle    = "title"

	// Feed fields
	FieldItems   = "items"
	FieldSkipped = "skipped"
	FieldBytes   = "bytes"

	// Path / URL fields
	FieldPath    = "path"
	FieldBaseURL = "base_url"
)
