// Package postgres contains the PostgreSQL implementations of the
// store interfaces. All implementations accept a store.DBTX, so they
// run unchanged against a pool or a transaction.
package postgres
