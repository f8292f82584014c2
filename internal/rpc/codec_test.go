// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"

	"github.com/MKhiriev/health-enclave/models"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_DocumentFrame(t *testing.T) {
	md := models.NewDocumentMetadata("0190f5b2-7c3e-7a4b-9d2e-1f2a3b4c5d6e", "report.pdf", "Dr. X", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	key := models.TwofoldKey([]byte("twofold"))

	for _, frame := range []models.DocumentFrame{
		{Metadata: &md},
		{Key: &key},
		{Chunk: []byte("HELLO")},
	} {
		raw, err := Codec{}.Marshal(&frame)
		require.NoError(t, err)

		var got models.DocumentFrame
		require.NoError(t, Codec{}.Unmarshal(raw, &got))
		if frame.Metadata != nil {
			require.NotNil(t, got.Metadata)
			assert.True(t, md.Equal(*got.Metadata))
		}
		if frame.Key != nil {
			require.NotNil(t, got.Key)
			assert.Equal(t, models.KeyKindTwofold, got.Key.Kind())
		}
		assert.Equal(t, frame.Chunk, got.Chunk)
	}
}

func TestCodec_UnmarshalGarbage(t *testing.T) {
	var got models.KeyWithIdentifier
	assert.Error(t, Codec{}.Unmarshal([]byte{0xff, 0x00}, &got))
}

func TestMissingMethod(t *testing.T) {
	assert.Equal(t, MissingDocumentsForDeviceMethod, MissingMethod(models.MissingDocumentsForDevice))
	assert.Equal(t, MissingTwofoldKeysForTerminalMethod, MissingMethod(models.MissingTwofoldKeysForTerminal))
	assert.Empty(t, MissingMethod(0))

	// the client relies on the stream order following MissingKind
	for kind := models.MissingDocumentsForDevice; kind <= models.MissingTwofoldKeysForTerminal; kind++ {
		desc := HealthEnclaveServiceDesc.Streams[1+int(kind)]
		assert.Equal(t, "/"+ServiceName+"/"+desc.StreamName, MissingMethod(kind))
	}
}
