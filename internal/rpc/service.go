// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/health-enclave/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "healthenclave.HealthEnclave"

// IdentityHeader is the metadata key carrying hex(DeviceIdentity).
const IdentityHeader = "deviceidentifier"

const (
	KeepAliveMethod                     = "/" + ServiceName + "/KeepAlive"
	AdvertiseDocumentsToTerminalMethod  = "/" + ServiceName + "/AdvertiseDocumentsToTerminal"
	MissingDocumentsForDeviceMethod     = "/" + ServiceName + "/MissingDocumentsForDevice"
	MissingDocumentsForTerminalMethod   = "/" + ServiceName + "/MissingDocumentsForTerminal"
	MissingOnefoldKeysForTerminalMethod = "/" + ServiceName + "/MissingOnefoldKeysForTerminal"
	MissingTwofoldKeysForTerminalMethod = "/" + ServiceName + "/MissingTwofoldKeysForTerminal"
	TransferDocumentToDeviceMethod      = "/" + ServiceName + "/TransferDocumentToDevice"
	TransferDocumentToTerminalMethod    = "/" + ServiceName + "/TransferDocumentToTerminal"
	TransferOnefoldKeyMethod            = "/" + ServiceName + "/TransferOnefoldKey"
	TransferTwofoldKeyMethod            = "/" + ServiceName + "/TransferTwofoldKey"
	DenyOnefoldKeyMethod                = "/" + ServiceName + "/DenyOnefoldKey"
	DeleteDocumentMethod                = "/" + ServiceName + "/DeleteDocument"
)

// MissingMethod maps a reconciliation queue to the call that streams it.
func MissingMethod(kind models.MissingKind) string {
	switch kind {
	case models.MissingDocumentsForDevice:
		return MissingDocumentsForDeviceMethod
	case models.MissingDocumentsForTerminal:
		return MissingDocumentsForTerminalMethod
	case models.MissingOnefoldKeysForTerminal:
		return MissingOnefoldKeysForTerminalMethod
	case models.MissingTwofoldKeysForTerminal:
		return MissingTwofoldKeysForTerminalMethod
	}
	return ""
}

type (
	KeepAliveServer                    = grpc.BidiStreamingServer[models.Heartbeat, models.Heartbeat]
	AdvertiseDocumentsToTerminalServer = grpc.ClientStreamingServer[models.DocumentMetadata, models.Empty]
	MissingServer                      = grpc.ServerStreamingServer[models.IdentifierMessage]
	TransferDocumentToDeviceServer     = grpc.ServerStreamingServer[models.DocumentFrame]
	TransferDocumentToTerminalServer   = grpc.ClientStreamingServer[models.DocumentFrame, models.Empty]
)

// HealthEnclaveServer is implemented by the terminal.
type HealthEnclaveServer interface {
	KeepAlive(KeepAliveServer) error
	AdvertiseDocumentsToTerminal(AdvertiseDocumentsToTerminalServer) error
	MissingDocumentsForDevice(*models.Empty, MissingServer) error
	MissingDocumentsForTerminal(*models.Empty, MissingServer) error
	MissingOnefoldKeysForTerminal(*models.Empty, MissingServer) error
	MissingTwofoldKeysForTerminal(*models.Empty, MissingServer) error
	TransferDocumentToDevice(*models.IdentifierMessage, TransferDocumentToDeviceServer) error
	TransferDocumentToTerminal(TransferDocumentToTerminalServer) error
	TransferOnefoldKey(context.Context, *models.KeyWithIdentifier) (*models.Empty, error)
	TransferTwofoldKey(context.Context, *models.KeyWithIdentifier) (*models.Empty, error)
	DenyOnefoldKey(context.Context, *models.IdentifierMessage) (*models.Empty, error)
	DeleteDocument(context.Context, *models.IdentifierMessage) (*models.Empty, error)
}

// UnimplementedHealthEnclaveServer can be embedded to satisfy the interface
// for partial implementations.
type UnimplementedHealthEnclaveServer struct{}

func (UnimplementedHealthEnclaveServer) KeepAlive(KeepAliveServer) error {
	return status.Error(codes.Unimplemented, "method KeepAlive not implemented")
}
func (UnimplementedHealthEnclaveServer) AdvertiseDocumentsToTerminal(AdvertiseDocumentsToTerminalServer) error {
	return status.Error(codes.Unimplemented, "method AdvertiseDocumentsToTerminal not implemented")
}
func (UnimplementedHealthEnclaveServer) MissingDocumentsForDevice(*models.Empty, MissingServer) error {
	return status.Error(codes.Unimplemented, "method MissingDocumentsForDevice not implemented")
}
func (UnimplementedHealthEnclaveServer) MissingDocumentsForTerminal(*models.Empty, MissingServer) error {
	return status.Error(codes.Unimplemented, "method MissingDocumentsForTerminal not implemented")
}
func (UnimplementedHealthEnclaveServer) MissingOnefoldKeysForTerminal(*models.Empty, MissingServer) error {
	return status.Error(codes.Unimplemented, "method MissingOnefoldKeysForTerminal not implemented")
}
func (UnimplementedHealthEnclaveServer) MissingTwofoldKeysForTerminal(*models.Empty, MissingServer) error {
	return status.Error(codes.Unimplemented, "method MissingTwofoldKeysForTerminal not implemented")
}
func (UnimplementedHealthEnclaveServer) TransferDocumentToDevice(*models.IdentifierMessage, TransferDocumentToDeviceServer) error {
	return status.Error(codes.Unimplemented, "method TransferDocumentToDevice not implemented")
}
func (UnimplementedHealthEnclaveServer) TransferDocumentToTerminal(TransferDocumentToTerminalServer) error {
	return status.Error(codes.Unimplemented, "method TransferDocumentToTerminal not implemented")
}
func (UnimplementedHealthEnclaveServer) TransferOnefoldKey(context.Context, *models.KeyWithIdentifier) (*models.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method TransferOnefoldKey not implemented")
}
func (UnimplementedHealthEnclaveServer) TransferTwofoldKey(context.Context, *models.KeyWithIdentifier) (*models.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method TransferTwofoldKey not implemented")
}
func (UnimplementedHealthEnclaveServer) DenyOnefoldKey(context.Context, *models.IdentifierMessage) (*models.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DenyOnefoldKey not implemented")
}
func (UnimplementedHealthEnclaveServer) DeleteDocument(context.Context, *models.IdentifierMessage) (*models.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDocument not implemented")
}

// RegisterHealthEnclaveServer registers srv on s.
func RegisterHealthEnclaveServer(s grpc.ServiceRegistrar, srv HealthEnclaveServer) {
	s.RegisterService(&HealthEnclaveServiceDesc, srv)
}

func keepAliveHandler(srv any, stream grpc.ServerStream) error {
	return srv.(HealthEnclaveServer).KeepAlive(&grpc.GenericServerStream[models.Heartbeat, models.Heartbeat]{ServerStream: stream})
}

func advertiseHandler(srv any, stream grpc.ServerStream) error {
	return srv.(HealthEnclaveServer).AdvertiseDocumentsToTerminal(&grpc.GenericServerStream[models.DocumentMetadata, models.Empty]{ServerStream: stream})
}

func missingHandler(call func(HealthEnclaveServer, *models.Empty, MissingServer) error) grpc.StreamHandler {
	return func(srv any, stream grpc.ServerStream) error {
		m := new(models.Empty)
		if err := stream.RecvMsg(m); err != nil {
			return err
		}
		return call(srv.(HealthEnclaveServer), m, &grpc.GenericServerStream[models.Empty, models.IdentifierMessage]{ServerStream: stream})
	}
}

func transferToDeviceHandler(srv any, stream grpc.ServerStream) error {
	m := new(models.IdentifierMessage)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(HealthEnclaveServer).TransferDocumentToDevice(m, &grpc.GenericServerStream[models.IdentifierMessage, models.DocumentFrame]{ServerStream: stream})
}

func transferToTerminalHandler(srv any, stream grpc.ServerStream) error {
	return srv.(HealthEnclaveServer).TransferDocumentToTerminal(&grpc.GenericServerStream[models.DocumentFrame, models.Empty]{ServerStream: stream})
}

func unaryHandler[Req any](method string, call func(HealthEnclaveServer, context.Context, *Req) (*models.Empty, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(HealthEnclaveServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(HealthEnclaveServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// HealthEnclaveServiceDesc is the grpc.ServiceDesc of the HealthEnclave
// service.
var HealthEnclaveServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HealthEnclaveServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "TransferOnefoldKey", Handler: unaryHandler(TransferOnefoldKeyMethod, HealthEnclaveServer.TransferOnefoldKey)},
		{MethodName: "TransferTwofoldKey", Handler: unaryHandler(TransferTwofoldKeyMethod, HealthEnclaveServer.TransferTwofoldKey)},
		{MethodName: "DenyOnefoldKey", Handler: unaryHandler(DenyOnefoldKeyMethod, HealthEnclaveServer.DenyOnefoldKey)},
		{MethodName: "DeleteDocument", Handler: unaryHandler(DeleteDocumentMethod, HealthEnclaveServer.DeleteDocument)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "KeepAlive", Handler: keepAliveHandler, ServerStreams: true, ClientStreams: true},
		{StreamName: "AdvertiseDocumentsToTerminal", Handler: advertiseHandler, ClientStreams: true},
		{StreamName: "MissingDocumentsForDevice", Handler: missingHandler(HealthEnclaveServer.MissingDocumentsForDevice), ServerStreams: true},
		{StreamName: "MissingDocumentsForTerminal", Handler: missingHandler(HealthEnclaveServer.MissingDocumentsForTerminal), ServerStreams: true},
		{StreamName: "MissingOnefoldKeysForTerminal", Handler: missingHandler(HealthEnclaveServer.MissingOnefoldKeysForTerminal), ServerStreams: true},
		{StreamName: "MissingTwofoldKeysForTerminal", Handler: missingHandler(HealthEnclaveServer.MissingTwofoldKeysForTerminal), ServerStreams: true},
		{StreamName: "TransferDocumentToDevice", Handler: transferToDeviceHandler, ServerStreams: true},
		{StreamName: "TransferDocumentToTerminal", Handler: transferToTerminalHandler, ClientStreams: true},
	},
	Metadata: "healthenclave.cbor",
}
