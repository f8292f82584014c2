// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/rpc"
	"github.com/MKhiriev/health-enclave/internal/utils"
)

const traceIDHeader = "x-trace-id"

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}

func headerValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// withTraceID attaches a child logger carrying the trace id and the method to
// the call context.
func (h *Handler) withTraceID(ctx context.Context, method string) context.Context {
	traceID := headerValue(ctx, traceIDHeader)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("method", method)
	})

	ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
	return l.WithContext(ctx)
}

// authorize binds the call to the Active session. The returned context ends
// with the session; its cause is the session's end cause.
func (h *Handler) authorize(ctx context.Context) (context.Context, context.CancelFunc, error) {
	sess, err := h.sessions.Authorize(headerValue(ctx, rpc.IdentityHeader))
	if err != nil {
		return nil, nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = utils.WithDeviceIdentity(ctx, sess.Identity())
	ctx, cancel := context.WithCancelCause(ctx)
	stop := context.AfterFunc(sess.Context(), func() {
		cancel(context.Cause(sess.Context()))
	})

	return ctx, func() {
		stop()
		cancel(nil)
	}, nil
}

// UnaryInterceptor traces, authorizes and logs unary calls.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = h.withTraceID(ctx, info.FullMethod)
	start := time.Now()

	callCtx, release, err := h.authorize(ctx)
	if err != nil {
		logCall(logger.FromContext(ctx), start, err)
		return nil, err
	}
	defer release()

	resp, err := handler(callCtx, req)
	logCall(logger.FromContext(ctx), start, err)
	return resp, err
}

// StreamInterceptor traces, authorizes and logs streaming calls. KeepAlive
// admits the session itself and is not authorized here.
func (h *Handler) StreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx := h.withTraceID(ss.Context(), info.FullMethod)
	start := time.Now()

	callCtx := ctx
	if info.FullMethod != rpc.KeepAliveMethod {
		authorized, release, err := h.authorize(ctx)
		if err != nil {
			logCall(logger.FromContext(ctx), start, err)
			return err
		}
		defer release()
		callCtx = authorized
	}

	err := handler(srv, &serverStream{ServerStream: ss, ctx: callCtx})
	logCall(logger.FromContext(ctx), start, err)
	return err
}

func logCall(log *logger.Logger, start time.Time, err error) {
	code := status.Code(err)

	event := log.Info()
	if code != codes.OK && code != codes.Canceled {
		event = log.Warn().Err(err)
	}
	event.
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Send()
}
