// Package health provides liveness, readiness and version endpoints.
//
// Liveness answers 200 while the process runs. Readiness runs every
// registered CheckFunc with a per-check timeout and answers 503 when any
// check fails or after SetDraining has been called during shutdown.
package health
