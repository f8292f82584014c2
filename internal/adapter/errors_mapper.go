// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
)

// mapGRPCError translates a terminal status back into a domain sentinel.
// AlreadyExists is ambiguous on the wire, so the caller passes the sentinel it
// stands for in that call.
func mapGRPCError(err error, alreadyExists error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return err
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	var sentinel error
	switch st.Code() {
	case codes.AlreadyExists:
		sentinel = alreadyExists
	case codes.Unauthenticated:
		sentinel = session.ErrInvalidIdentity
	case codes.NotFound:
		sentinel = store.ErrMissingMetadata
	case codes.DataLoss:
		sentinel = crypto.ErrAuthenticationFailure
	case codes.FailedPrecondition:
		sentinel = crypto.ErrNoSharedKey
	case codes.InvalidArgument:
		sentinel = ErrProtocolViolation
	case codes.Unavailable:
		sentinel = session.ErrSessionLost
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	default:
		return fmt.Errorf("terminal call failed: %w", err)
	}
	if sentinel == nil {
		return fmt.Errorf("terminal call failed: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %s", ErrPreconditionFailed, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrTooLarge, body)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", crypto.ErrAuthenticationFailure, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
