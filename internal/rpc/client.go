// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/MKhiriev/health-enclave/models"
)

type (
	KeepAliveClient                    = grpc.BidiStreamingClient[models.Heartbeat, models.Heartbeat]
	AdvertiseDocumentsToTerminalClient = grpc.ClientStreamingClient[models.DocumentMetadata, models.Empty]
	MissingClient                      = grpc.ServerStreamingClient[models.IdentifierMessage]
	TransferDocumentToDeviceClient     = grpc.ServerStreamingClient[models.DocumentFrame]
	TransferDocumentToTerminalClient   = grpc.ClientStreamingClient[models.DocumentFrame, models.Empty]
)

// HealthEnclaveClient is the device side of the service.
type HealthEnclaveClient interface {
	KeepAlive(ctx context.Context, opts ...grpc.CallOption) (KeepAliveClient, error)
	AdvertiseDocumentsToTerminal(ctx context.Context, opts ...grpc.CallOption) (AdvertiseDocumentsToTerminalClient, error)
	Missing(ctx context.Context, kind models.MissingKind, opts ...grpc.CallOption) (MissingClient, error)
	TransferDocumentToDevice(ctx context.Context, in *models.IdentifierMessage, opts ...grpc.CallOption) (TransferDocumentToDeviceClient, error)
	TransferDocumentToTerminal(ctx context.Context, opts ...grpc.CallOption) (TransferDocumentToTerminalClient, error)
	TransferOnefoldKey(ctx context.Context, in *models.KeyWithIdentifier, opts ...grpc.CallOption) (*models.Empty, error)
	TransferTwofoldKey(ctx context.Context, in *models.KeyWithIdentifier, opts ...grpc.CallOption) (*models.Empty, error)
	DenyOnefoldKey(ctx context.Context, in *models.IdentifierMessage, opts ...grpc.CallOption) (*models.Empty, error)
	DeleteDocument(ctx context.Context, in *models.IdentifierMessage, opts ...grpc.CallOption) (*models.Empty, error)
}

type healthEnclaveClient struct {
	cc grpc.ClientConnInterface
}

// NewHealthEnclaveClient binds the service to cc. Every call is sent with the
// CBOR content-subtype.
func NewHealthEnclaveClient(cc grpc.ClientConnInterface) HealthEnclaveClient {
	return &healthEnclaveClient{cc: cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *healthEnclaveClient) stream(ctx context.Context, index int, method string, opts []grpc.CallOption) (grpc.ClientStream, error) {
	return c.cc.NewStream(ctx, &HealthEnclaveServiceDesc.Streams[index], method, withCodec(opts)...)
}

func (c *healthEnclaveClient) KeepAlive(ctx context.Context, opts ...grpc.CallOption) (KeepAliveClient, error) {
	stream, err := c.stream(ctx, 0, KeepAliveMethod, opts)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[models.Heartbeat, models.Heartbeat]{ClientStream: stream}, nil
}

func (c *healthEnclaveClient) AdvertiseDocumentsToTerminal(ctx context.Context, opts ...grpc.CallOption) (AdvertiseDocumentsToTerminalClient, error) {
	stream, err := c.stream(ctx, 1, AdvertiseDocumentsToTerminalMethod, opts)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[models.DocumentMetadata, models.Empty]{ClientStream: stream}, nil
}

// Missing opens the server stream for the queue of the given kind.
func (c *healthEnclaveClient) Missing(ctx context.Context, kind models.MissingKind, opts ...grpc.CallOption) (MissingClient, error) {
	method := MissingMethod(kind)
	if method == "" {
		return nil, fmt.Errorf("unknown missing kind %d", kind)
	}
	index := 1 + int(kind) // streams 2..5 follow the MissingKind order
	stream, err := c.stream(ctx, index, method, opts)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[models.Empty, models.IdentifierMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(&models.Empty{}); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *healthEnclaveClient) TransferDocumentToDevice(ctx context.Context, in *models.IdentifierMessage, opts ...grpc.CallOption) (TransferDocumentToDeviceClient, error) {
	stream, err := c.stream(ctx, 6, TransferDocumentToDeviceMethod, opts)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[models.IdentifierMessage, models.DocumentFrame]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *healthEnclaveClient) TransferDocumentToTerminal(ctx context.Context, opts ...grpc.CallOption) (TransferDocumentToTerminalClient, error) {
	stream, err := c.stream(ctx, 7, TransferDocumentToTerminalMethod, opts)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[models.DocumentFrame, models.Empty]{ClientStream: stream}, nil
}

func (c *healthEnclaveClient) invoke(ctx context.Context, method string, in any, opts []grpc.CallOption) (*models.Empty, error) {
	out := new(models.Empty)
	if err := c.cc.Invoke(ctx, method, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *healthEnclaveClient) TransferOnefoldKey(ctx context.Context, in *models.KeyWithIdentifier, opts ...grpc.CallOption) (*models.Empty, error) {
	return c.invoke(ctx, TransferOnefoldKeyMethod, in, opts)
}

func (c *healthEnclaveClient) TransferTwofoldKey(ctx context.Context, in *models.KeyWithIdentifier, opts ...grpc.CallOption) (*models.Empty, error) {
	return c.invoke(ctx, TransferTwofoldKeyMethod, in, opts)
}

func (c *healthEnclaveClient) DenyOnefoldKey(ctx context.Context, in *models.IdentifierMessage, opts ...grpc.CallOption) (*models.Empty, error) {
	return c.invoke(ctx, DenyOnefoldKeyMethod, in, opts)
}

func (c *healthEnclaveClient) DeleteDocument(ctx context.Context, in *models.IdentifierMessage, opts ...grpc.CallOption) (*models.Empty, error) {
	return c.invoke(ctx, DeleteDocumentMethod, in, opts)
}
