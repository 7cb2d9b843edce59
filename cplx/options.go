// SPDX-License-Identifier: MIT

// Package cplx: functional configuration for tolerance, formatting and the
// binary encoding. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state; native byte order is read
//     once from golang.org/x/sys/cpu.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package cplx

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/cpu"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultPrecision renders the shortest representation that round-trips.
	DefaultPrecision = -1
)

// defaultByteOrder is the byte order of Bytes, FromBytes and MarshalBinary
// when no option overrides it.
var defaultByteOrder binary.ByteOrder = binary.LittleEndian

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "cplx: WithEpsilon: eps must be finite, non-negative"
	panicPrecisionInvalid = "cplx: WithPrecision: precision must be >= -1"
	panicByteOrderNil     = "cplx: WithByteOrder: order must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps       float64          // >= 0; DefaultEpsilon
	precision int              // >= -1; DefaultPrecision
	order     binary.ByteOrder // little-endian by default
}

// WithEpsilon sets the tolerance used by ApproxEqual.
// Panics when eps is NaN, infinite or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPrecision sets the number of digits after the decimal point used by
// Display. -1 selects the shortest round-trip representation.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithByteOrder selects the byte order of the binary encoding.
func WithByteOrder(order binary.ByteOrder) Option {
	if order == nil {
		panic(panicByteOrderNil)
	}

	return func(o *Options) { o.order = order }
}

// WithNativeOrder selects the host byte order, i.e. the layout the value
// has in memory.
func WithNativeOrder() Option {
	return WithByteOrder(NativeByteOrder())
}

// NativeByteOrder reports the host byte order.
func NativeByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// defaultOptions returns the zero-config Options.
func defaultOptions() Options {
	return Options{
		eps:       DefaultEpsilon,
		precision: DefaultPrecision,
		order:     defaultByteOrder,
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
