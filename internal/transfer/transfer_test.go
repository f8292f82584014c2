// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transfer

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/models"
)

func testUnit(body []byte) models.DocumentUnit {
	return models.DocumentUnit{
		Metadata: models.NewDocumentMetadata("0190f5b2-7c3e-7a4b-9d2e-1f2a3b4c5d6e", "report.pdf", "Dr. X", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		Key:      models.StoredKey{Key: models.OnefoldKey([]byte("sealed"))},
		Body:     body,
	}
}

func replay(frames []models.DocumentFrame) func() (models.DocumentFrame, error) {
	i := 0
	return func() (models.DocumentFrame, error) {
		if i == len(frames) {
			return models.DocumentFrame{}, io.EOF
		}
		f := frames[i]
		i++
		return f, nil
	}
}

// ── Split ───────────────────────────────────────────────────────────────────

func TestSplit_RoundTrip(t *testing.T) {
	const cs = 64
	for _, size := range []int{0, 1, cs - 1, cs, cs + 1, 3*cs + 7} {
		body := bytes.Repeat([]byte{0x5A}, size)
		for i := range body {
			body[i] = byte(i)
		}

		chunks := Split(body, cs)
		for _, c := range chunks {
			assert.LessOrEqual(t, len(c), cs)
			assert.NotEmpty(t, c)
		}
		assert.Equal(t, (size+cs-1)/cs, len(chunks), "size %d", size)
		assert.Equal(t, body, bytes.Join(chunks, nil), "size %d", size)
	}
}

func TestSplit_DefaultChunkSize(t *testing.T) {
	chunks := Split(make([]byte, DefaultChunkSize+1), 0)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], DefaultChunkSize)
}

// ── Frames / Receive ────────────────────────────────────────────────────────

func TestFrames_Order(t *testing.T) {
	frames := Frames(testUnit([]byte("HELLO WORLD")), 4)
	require.Len(t, frames, 5)
	assert.NotNil(t, frames[0].Metadata)
	assert.NotNil(t, frames[1].Key)
	assert.Equal(t, []byte("HELL"), frames[2].Chunk)
	assert.Equal(t, []byte("RLD"), frames[4].Chunk)
}

func TestReceive_ReassemblesAcrossChunkSizes(t *testing.T) {
	unit := testUnit(bytes.Repeat([]byte("0123456789"), 100))

	for _, cs := range []int{1, 7, 1000, 4096} {
		got, err := Receive(replay(Frames(unit, cs)), 0)
		require.NoError(t, err)
		assert.True(t, unit.Metadata.Equal(got.Metadata))
		assert.Equal(t, unit.Key.Key, got.Key.Key)
		assert.Equal(t, unit.Body, got.Body)
	}
}

func TestSend_StopsOnError(t *testing.T) {
	boom := errors.New("broken pipe")
	calls := 0
	err := Send(testUnit([]byte("HELLO")), 1, func(models.DocumentFrame) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestSendStream(t *testing.T) {
	unit := testUnit(nil)
	var sent []models.DocumentFrame
	err := SendStream(unit.Metadata, unit.Key.Key, func(fn func([]byte) error) error {
		for _, c := range []string{"HE", "LLO"} {
			if err := fn([]byte(c)); err != nil {
				return err
			}
		}
		return nil
	}, func(f models.DocumentFrame) error {
		sent = append(sent, f)
		return nil
	})
	require.NoError(t, err)

	got, err := Receive(replay(sent), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO"), got.Body)
}

// ── Ordering contract ───────────────────────────────────────────────────────

func TestAssembler_Violations(t *testing.T) {
	unit := testUnit([]byte("HELLO"))
	md := unit.Metadata
	key := unit.Key.Key
	badKey := models.EncryptedDocumentKey{}
	badMD := models.DocumentMetadata{ID: "nope"}

	cases := []struct {
		name   string
		frames []models.DocumentFrame
		want   error
	}{
		{"key before metadata", []models.DocumentFrame{{Key: &key}}, ErrOutOfOrderFrame},
		{"chunk before metadata", []models.DocumentFrame{{Chunk: []byte("x")}}, ErrOutOfOrderFrame},
		{"chunk before key", []models.DocumentFrame{{Metadata: &md}, {Chunk: []byte("x")}}, ErrOutOfOrderFrame},
		{"second metadata", []models.DocumentFrame{{Metadata: &md}, {Metadata: &md}}, ErrDuplicateFrame},
		{"second key", []models.DocumentFrame{{Metadata: &md}, {Key: &key}, {Key: &key}}, ErrDuplicateFrame},
		{"empty frame", []models.DocumentFrame{{}}, ErrMalformedFrame},
		{"two payloads", []models.DocumentFrame{{Metadata: &md, Key: &key}}, ErrMalformedFrame},
		{"bad metadata", []models.DocumentFrame{{Metadata: &badMD}}, ErrMalformedFrame},
		{"bad key", []models.DocumentFrame{{Metadata: &md}, {Key: &badKey}}, ErrMalformedFrame},
		{"no body", []models.DocumentFrame{{Metadata: &md}, {Key: &key}}, ErrIncompleteStream},
		{"no key", []models.DocumentFrame{{Metadata: &md}}, ErrIncompleteStream},
		{"nothing", nil, ErrIncompleteStream},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Receive(replay(tc.frames), 0)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAssembler_SizeLimit(t *testing.T) {
	_, err := Receive(replay(Frames(testUnit(make([]byte, 10)), 4)), 9)
	assert.ErrorIs(t, err, ErrDocumentTooLarge)

	_, err = Receive(replay(Frames(testUnit(make([]byte, 10)), 4)), 10)
	assert.NoError(t, err)
}

func TestAssembler_RecvErrorDiscards(t *testing.T) {
	boom := errors.New("stream reset")
	frames := Frames(testUnit([]byte("HELLO")), 2)
	i := 0
	_, err := Receive(func() (models.DocumentFrame, error) {
		if i == 3 {
			return models.DocumentFrame{}, boom
		}
		i++
		return frames[i-1], nil
	}, 0)
	assert.ErrorIs(t, err, boom)
}

func TestAssembler_Reset(t *testing.T) {
	unit := testUnit([]byte("HELLO"))
	a := NewAssembler(0)
	for _, f := range Frames(unit, 2)[:3] {
		require.NoError(t, a.Push(f))
	}
	a.Reset()

	_, err := a.Finish()
	assert.ErrorIs(t, err, ErrIncompleteStream)

	for _, f := range Frames(unit, 2) {
		require.NoError(t, a.Push(f))
	}
	got, err := a.Finish()
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO"), got.Body)
}
