// Package db opens the single connection a probe needs and hides pgx specifics
// behind small interfaces, so probes can be exercised with pgxmock.
package db
