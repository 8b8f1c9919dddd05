// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists. Uniqueness
	// is enforced by the database unique index, so two concurrent signups with
	// the same username can never both succeed.
	ErrUserAlreadyExists = errors.New("username already registered")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrHotelNotFound is returned when a query, update or delete targets a
	// hotel inquiry record (identified by hotel_id) that does not exist.
	ErrHotelNotFound = errors.New("hotel data not found")

	// ErrHotelNotSaved is returned when an INSERT of a hotel record completes
	// without error but the re-read of the freshly stored row fails,
	// indicating that no data was actually persisted.
	ErrHotelNotSaved = errors.New("hotel data was not saved")

	// ErrStoreUnavailable is returned (wrapped) when the database reports a
	// transient infrastructure failure — connection loss, deadlock rollback —
	// as opposed to a legitimate empty result. Callers should surface it as a
	// server-side availability problem, never as not-found.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no SET clauses).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
