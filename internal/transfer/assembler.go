// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transfer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/health-enclave/models"
)

// Assembler enforces the ordering contract on a single incoming stream and
// accumulates the unit it describes.
type Assembler struct {
	maxSize  int
	metadata *models.DocumentMetadata
	key      *models.EncryptedDocumentKey
	body     bytes.Buffer
}

// NewAssembler returns an assembler rejecting bodies above maxSize bytes.
// maxSize <= 0 disables the limit.
func NewAssembler(maxSize int) *Assembler {
	return &Assembler{maxSize: maxSize}
}

func payloads(f models.DocumentFrame) int {
	n := 0
	if f.Metadata != nil {
		n++
	}
	if f.Key != nil {
		n++
	}
	if len(f.Chunk) > 0 {
		n++
	}
	return n
}

// Push consumes the next frame.
func (a *Assembler) Push(f models.DocumentFrame) error {
	if payloads(f) != 1 {
		return ErrMalformedFrame
	}

	switch {
	case f.Metadata != nil:
		if a.metadata != nil {
			return fmt.Errorf("%w: metadata", ErrDuplicateFrame)
		}
		if err := f.Metadata.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedFrame, err)
		}
		md := *f.Metadata
		a.metadata = &md

	case f.Key != nil:
		if a.metadata == nil {
			return fmt.Errorf("%w: key before metadata", ErrOutOfOrderFrame)
		}
		if a.key != nil {
			return fmt.Errorf("%w: key", ErrDuplicateFrame)
		}
		if err := f.Key.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedFrame, err)
		}
		key := *f.Key
		a.key = &key

	default:
		if a.metadata == nil || a.key == nil {
			return fmt.Errorf("%w: chunk before metadata and key", ErrOutOfOrderFrame)
		}
		if a.maxSize > 0 && a.body.Len()+len(f.Chunk) > a.maxSize {
			return ErrDocumentTooLarge
		}
		a.body.Write(f.Chunk)
	}
	return nil
}

// Finish validates completeness at end of stream and returns the unit. The
// returned key carries no origin; the caller assigns it.
func (a *Assembler) Finish() (models.DocumentUnit, error) {
	if a.metadata == nil || a.key == nil || a.body.Len() == 0 {
		return models.DocumentUnit{}, ErrIncompleteStream
	}

	body := make([]byte, a.body.Len())
	copy(body, a.body.Bytes())
	return models.DocumentUnit{
		Metadata: *a.metadata,
		Key:      models.StoredKey{Key: *a.key},
		Body:     body,
	}, nil
}

// Reset discards partial state so the assembler can take a new stream.
func (a *Assembler) Reset() {
	a.metadata = nil
	a.key = nil
	a.body.Reset()
}

// Receive reads frames from recv until io.EOF and returns the assembled
// unit. Any other receive error, or a contract violation, discards the
// partial unit.
func Receive(recv func() (models.DocumentFrame, error), maxSize int) (models.DocumentUnit, error) {
	a := NewAssembler(maxSize)
	for {
		frame, err := recv()
		if errors.Is(err, io.EOF) {
			return a.Finish()
		}
		if err != nil {
			return models.DocumentUnit{}, err
		}
		if err = a.Push(frame); err != nil {
			return models.DocumentUnit{}, err
		}
	}
}
