// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/health-enclave/internal/config"
	myGRPC "github.com/MKhiriev/health-enclave/internal/handler/grpc"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/rpc"
)

// gracefulStopTimeout bounds GracefulStop; streams still open afterwards are
// cut.
const gracefulStopTimeout = 5 * time.Second

type grpcServer struct {
	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	creds, err := serverCredentials(cfg)
	if err != nil {
		return nil, err
	}

	server := grpc.NewServer(
		grpc.Creds(creds),
		grpc.ChainUnaryInterceptor(handler.UnaryInterceptor),
		grpc.ChainStreamInterceptor(handler.StreamInterceptor),
	)
	rpc.RegisterHealthEnclaveServer(server, handler)

	return &grpcServer{
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}, nil
}

func serverCredentials(cfg config.Server) (credentials.TransportCredentials, error) {
	switch {
	case cfg.TLSCertFile == "" && cfg.TLSKeyFile == "":
		return insecure.NewCredentials(), nil
	case cfg.TLSCertFile == "" || cfg.TLSKeyFile == "":
		return nil, fmt.Errorf("%w: both certificate and key files are required", ErrInvalidTLSConfig)
	}

	creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTLSConfig, err)
	}
	return creds, nil
}

func (g *grpcServer) RunServer(_ context.Context) error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(gracefulStopTimeout):
		g.server.Stop()
	}
}
