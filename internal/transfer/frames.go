// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transfer implements the chunked framing of a document unit:
// Metadata, then Key, then the ciphertext body in chunks, then end of stream.
package transfer

import (
	"github.com/MKhiriev/health-enclave/models"
)

// DefaultChunkSize is the canonical size of a Chunk frame payload.
const DefaultChunkSize = 16 * 1024

// Split cuts body into pieces of at most chunkSize bytes. The pieces alias
// body. chunkSize <= 0 selects DefaultChunkSize.
func Split(body []byte, chunkSize int) [][]byte {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	chunks := make([][]byte, 0, len(body)/chunkSize+1)
	for len(body) > 0 {
		n := min(chunkSize, len(body))
		chunks = append(chunks, body[:n])
		body = body[n:]
	}
	return chunks
}

// Frames renders unit as its ordered frame sequence.
func Frames(unit models.DocumentUnit, chunkSize int) []models.DocumentFrame {
	md := unit.Metadata
	key := unit.Key.Key

	chunks := Split(unit.Body, chunkSize)
	frames := make([]models.DocumentFrame, 0, len(chunks)+2)
	frames = append(frames,
		models.DocumentFrame{Metadata: &md},
		models.DocumentFrame{Key: &key},
	)
	for _, chunk := range chunks {
		frames = append(frames, models.DocumentFrame{Chunk: chunk})
	}
	return frames
}

// Send writes the frames of unit through send, stopping at the first error.
func Send(unit models.DocumentUnit, chunkSize int, send func(models.DocumentFrame) error) error {
	for _, frame := range Frames(unit, chunkSize) {
		if err := send(frame); err != nil {
			return err
		}
	}
	return nil
}

// SendStream writes Metadata and Key, then forwards body chunks produced by
// chunks. It lets a sender stream a stored body without loading it whole.
func SendStream(md models.DocumentMetadata, key models.EncryptedDocumentKey, chunks func(func([]byte) error) error, send func(models.DocumentFrame) error) error {
	if err := send(models.DocumentFrame{Metadata: &md}); err != nil {
		return err
	}
	if err := send(models.DocumentFrame{Key: &key}); err != nil {
		return err
	}
	return chunks(func(chunk []byte) error {
		return send(models.DocumentFrame{Chunk: chunk})
	})
}
