// Package store holds the SQL query layer. Every function takes a
// database.DB so tests can substitute database.FakeDB.
package store

import "github.com/jackc/pgx/v5"

// ErrNotFound reports that no row matched the operation's filter.
// Row lookups already surface pgx.ErrNoRows for an empty result, so the
// same sentinel is reused for Exec-based statements that affected no rows.
var ErrNotFound = pgx.ErrNoRows
