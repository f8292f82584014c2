// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID DocumentIdentifier = "0f8fad5b-d9cb-469f-a165-70867728950e"

func TestNewDocumentMetadata_NormalizesTime(t *testing.T) {
	local := time.FixedZone("UTC+3", 3*60*60)
	created := time.Date(2026, 1, 2, 3, 4, 5, 123_456_789, local)

	md := NewDocumentMetadata(testID, "report.pdf", "Dr. X", created)

	assert.Equal(t, time.UTC, md.CreatedAt.Location())
	assert.Equal(t, 123_000_000, md.CreatedAt.Nanosecond())
	assert.True(t, md.CreatedAt.Equal(created.Truncate(time.Millisecond)))
}

func TestDocumentMetadata_AssociatedDataDeterministic(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a := NewDocumentMetadata(testID, "report.pdf", "Dr. X", created)
	b := NewDocumentMetadata(testID, "report.pdf", "Dr. X", created.In(time.FixedZone("x", 3600)))

	adA, err := a.AssociatedData()
	require.NoError(t, err)
	adB, err := b.AssociatedData()
	require.NoError(t, err)
	assert.Equal(t, adA, adB)

	b.Name = "report2.pdf"
	adC, err := b.AssociatedData()
	require.NoError(t, err)
	assert.NotEqual(t, adA, adC)
}

func TestDocumentMetadata_CBORPreservesFields(t *testing.T) {
	md := NewDocumentMetadata(testID, "scan.png", "Dr. Y", time.Now())

	frame := DocumentFrame{Metadata: &md}
	data, err := cbor.Marshal(frame)
	require.NoError(t, err)

	var decoded DocumentFrame
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Metadata)
	assert.True(t, md.Equal(*decoded.Metadata))
	assert.Nil(t, decoded.Key)
	assert.Empty(t, decoded.Chunk)
}

func TestDocumentMetadata_Validate(t *testing.T) {
	ok := NewDocumentMetadata(testID, "a.txt", "", time.Now())
	require.NoError(t, ok.Validate())

	badID := ok
	badID.ID = "not-a-uuid"
	assert.ErrorIs(t, badID.Validate(), ErrInvalidDocumentIdentifier)

	blank := ok
	blank.Name = "  "
	assert.ErrorIs(t, blank.Validate(), ErrInvalidDocumentMetadata)
}

func TestEncryptedDocumentKey_Kind(t *testing.T) {
	assert.Equal(t, KeyKindOnefold, OnefoldKey([]byte{1}).Kind())
	assert.Equal(t, KeyKindTwofold, TwofoldKey([]byte{1}).Kind())
	assert.Equal(t, KeyKindUnknown, EncryptedDocumentKey{}.Kind())
	assert.Equal(t, KeyKindUnknown, EncryptedDocumentKey{Onefold: []byte{1}, Twofold: []byte{2}}.Kind())

	assert.ErrorIs(t, EncryptedDocumentKey{}.Validate(), ErrMalformedKey)
	assert.NoError(t, TwofoldKey([]byte{1}).Validate())
}

func TestStoredKey_UsableWith(t *testing.T) {
	k := StoredKey{Key: OnefoldKey([]byte{1}), Origin: KeyOriginGranted, SharedKeyID: "abc"}
	assert.True(t, k.UsableWith("abc"))
	assert.False(t, k.UsableWith("def"))
	assert.False(t, k.UsableWith(""))

	tw := StoredKey{Key: TwofoldKey([]byte{1}), Origin: KeyOriginDevice, SharedKeyID: "abc"}
	assert.False(t, tw.UsableWith("abc"))
}

func TestParseDeviceIdentity(t *testing.T) {
	var id DeviceIdentity
	for i := range id {
		id[i] = byte(i)
	}

	parsed, err := ParseDeviceIdentity(id.Hex())
	require.NoError(t, err)
	assert.True(t, id.Equal(parsed))
	assert.Len(t, id.Hex(), 2*DeviceIdentitySize)
	assert.Len(t, id.Owner(), 255)
	assert.True(t, strings.HasPrefix(id.Hex(), id.Owner()))

	_, err = ParseDeviceIdentity("zz")
	assert.ErrorIs(t, err, ErrMalformedIdentity)

	_, err = ParseDeviceIdentity("abcd")
	assert.ErrorIs(t, err, ErrMalformedIdentity)

	_, err = ParseDeviceIdentity("")
	assert.ErrorIs(t, err, ErrMalformedIdentity)
}
