// SPDX-License-Identifier: MIT

// Package cplx: sentinel error set.
// Arithmetic never fails (IEEE-754 semantics, checked variants report via
// ok=false), so the only hard contract is the byte-length check of the
// binary decoder. Tests match sentinels via errors.Is.
package cplx

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when a byte buffer handed to the decoder
	// is not exactly Size[N]() bytes long.
	ErrSizeMismatch = errors.New("cplx: size mismatch")
)

// cplxErrorf tags err with the failing operation; errors.Is still matches.
func cplxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
