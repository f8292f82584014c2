// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transfer

import "errors"

// Ordering contract violations. Each aborts the stream; nothing received so
// far is persisted.
var (
	// ErrOutOfOrderFrame is returned for a Key or Chunk before Metadata, or a
	// Chunk before Key.
	ErrOutOfOrderFrame = errors.New("frame received out of order")

	// ErrDuplicateFrame is returned for a second Metadata or Key frame.
	ErrDuplicateFrame = errors.New("duplicate frame in stream")

	// ErrMalformedFrame is returned for a frame carrying zero or several
	// payloads, or an invalid metadata or key payload.
	ErrMalformedFrame = errors.New("malformed frame")

	// ErrIncompleteStream is returned when a stream ends without metadata, a
	// key and a non-empty body.
	ErrIncompleteStream = errors.New("incomplete document stream")

	// ErrDocumentTooLarge is returned when the accumulated body exceeds the
	// receiver's limit.
	ErrDocumentTooLarge = errors.New("document exceeds size limit")
)
