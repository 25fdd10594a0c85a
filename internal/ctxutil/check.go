// Package ctxutil holds the shared cancellation check used at the entry of
// every blocking operation in reposcope.
package ctxutil

import "context"

// Canceled returns the context's error when it is already canceled or past
// its deadline, nil otherwise. Runner, tracker, and provider methods call
// this before spawning a git process or an HTTP request so a dead context
// never starts external work.
//
// ctx.Err() is nil until Done is closed, so no select is needed.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
