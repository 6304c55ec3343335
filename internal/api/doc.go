// Package api provides the HTTP handlers for the news aggregator.
// Each handler runs the same linear pipeline: validate the request
// input, confirm referenced entities exist, perform the storage
// operation, and re-read for the canonical response. The first failing
// step aborts the pipeline; no write happens after a failed check.
package api
