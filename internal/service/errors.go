// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoSession is returned by terminal operations that need a connected
	// device.
	ErrNoSession = errors.New("no device session")

	// ErrNoPermission is the outcome of a retrieval the device denied.
	ErrNoPermission = errors.New("device denied access to the document")

	// ErrRetrievalPending is returned when a blocking retrieval gave up before
	// the device answered. The request stays queued.
	ErrRetrievalPending = errors.New("document retrieval is pending")

	// ErrDocumentNotFound is returned for an identifier neither side knows.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidDocument is returned for an empty name or body.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUnexpectedKeyKind is returned when a key arrives in the wrong
	// custody form for the call.
	ErrUnexpectedKeyKind = errors.New("unexpected key kind")

	// ErrUnknownMissingKind is returned for a missing-item stream outside the
	// four known ones.
	ErrUnknownMissingKind = errors.New("unknown missing kind")

	// ErrNotConnected is returned by device operations that need the terminal
	// while no session is up.
	ErrNotConnected = errors.New("not connected to a terminal")

	// ErrAlreadyInitialized is returned by Init when the keychain already
	// holds an identity.
	ErrAlreadyInitialized = errors.New("device is already initialized")

	// ErrWrongPassphrase is returned when the keychain cannot be unlocked.
	ErrWrongPassphrase = errors.New("wrong passphrase")
)
