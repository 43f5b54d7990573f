// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small wrappers around the standard errors
// package for logging errors at the point where they are ignored or
// only partially handled.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error that formats as the given text.
// It is a direct wrapper of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Join returns an error that wraps the given errors.
// It is a direct wrapper of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Is reports whether any error in err's tree matches target.
// It is a direct wrapper of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is a direct wrapper of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Log takes the given error and logs it if it is non-nil,
// adding the file and line of the caller. It returns the error
// so that it can be used in-line with a return statement.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 logs the given error like [Log] and returns the first value,
// for wrapping two-value function calls in-line.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Ignore1 returns the first value, ignoring any error,
// for wrapping two-value function calls in-line.
func Ignore1[T any](v T, err error) T {
	return v
}

// callerInfo returns the file and line of the logging caller's caller.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, line)
}
