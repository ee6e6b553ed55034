package core

import "errors"

// ErrReentrantReconcile is returned when a reconciliation is requested while
// another one is still in progress on the UI loop.
var ErrReentrantReconcile = errors.New("reconciliation already in progress")
