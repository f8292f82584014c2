// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks documents entering the terminal before the
// coordinator encrypts, stores or forwards them.
//
// Operator uploads are checked for a printable name and a bounded, non-empty
// body. Metadata advertised or pushed by a device is checked field by field;
// callers pass the field names they care about, so that the same validator
// serves both directions.
package validators

import "context"

// Validator checks obj, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
