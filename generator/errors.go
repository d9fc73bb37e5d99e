// SPDX-License-Identifier: MIT
// Package: gridpath/generator
//
// errors.go: sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site.
//   • Option constructors panic on nil inputs; Create never panics.

package generator

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates an unsupported generator kind.
var ErrUnknownKind = errors.New("generator: unknown kind")

// generatorErrorf prefixes an error with the method that produced it,
// keeping the wrapped sentinel visible to errors.Is.
func generatorErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
