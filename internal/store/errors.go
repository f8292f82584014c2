// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMissingMetadata is returned when no live metadata record exists for
	// the requested identifier.
	ErrMissingMetadata = errors.New("document metadata is missing")

	// ErrMissingKey is returned when a document is stored without a live key
	// custody record.
	ErrMissingKey = errors.New("document key is missing")

	// ErrDocumentExists is returned by Put for an identifier that is already
	// stored. Documents are immutable.
	ErrDocumentExists = errors.New("document already exists")

	// ErrDocumentDeleted is returned when the identifier carries a deleted
	// marker.
	ErrDocumentDeleted = errors.New("document was deleted")

	// ErrKeychainNotInitialized is returned when the device keychain has no
	// identity or key yet.
	ErrKeychainNotInitialized = errors.New("device keychain is not initialized")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrUnsupportedDSN is returned when the DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
