// SPDX-License-Identifier: MIT

package cplx

// Test bridge: exposes a read-only view of the resolved Options to the
// external cplx_test package without widening the production API.

import "encoding/binary"

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Eps       float64
	Precision int
	Order     binary.ByteOrder
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Precision: o.precision, Order: o.order}
}
