// SPDX-License-Identifier: MIT

package cplx_test

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/katalvlaran/complexn/cplx"
)

func ExampleNew() {
	z := cplx.New(3.0, 4.0)
	fmt.Println(z)
	fmt.Printf("%#v\n", z)
	fmt.Println(z.Amplitude())
	// Output:
	// ( + 3 + 4i )
	// Complex { real: 3.0, imaginary: 4.0i }
	// 5
}

func ExampleComplex_Mul() {
	i := cplx.I[float64]()
	fmt.Println(i.Mul(i))
	fmt.Println(cplx.New(1.0, 2.0).Mul(cplx.New(3.0, 4.0)))
	// Output:
	// ( - 1 + 0i )
	// ( - 5 + 10i )
}

// AddF moves along the real axis only; MulF scales both components.
func ExampleComplex_AddF() {
	z := cplx.New(1.0, 2.0)
	fmt.Println(z.AddF(10))
	fmt.Println(z.MulF(10))
	// Output:
	// ( + 11 + 2i )
	// ( + 10 + 20i )
}

func ExampleComplex_Powi() {
	i := cplx.I[float64]()
	fmt.Println(i.Powi(4))
	fmt.Println(i.Powi(-1))
	// Output:
	// ( + 1 + 0i )
	// ( + 0 - 1i )
}

func ExampleComplex_Pow() {
	i := cplx.I[float64]()
	fmt.Printf("%.6f\n", i.Pow(i).Real)
	fmt.Println(cplx.New(2.0, 0.0).Pow(cplx.New(2.0, 0.0)).Display(cplx.WithPrecision(6)))
	fmt.Println(cplx.Zero[float64]().Pow(cplx.New(-1.0, 0.0)))
	// Output:
	// 0.207880
	// ( + 4.000000 + 0.000000i )
	// ( + inf + 0i )
}

func ExampleFromArgumentAmplitude() {
	z := cplx.FromArgumentAmplitude(math.Pi/2, 2.0)
	fmt.Println(z.NaiveRound())
	// Output:
	// ( + 0 + 2i )
}

func ExampleComplex_Bytes() {
	z := cplx.New(1.0, -2.0)
	fmt.Printf("% x\n", z.Bytes())
	fmt.Printf("% x\n", z.Bytes(cplx.WithByteOrder(binary.BigEndian)))

	back, err := cplx.FromBytes[float64](z.Bytes())
	fmt.Println(back, err)

	_, err = cplx.FromBytes[float64]([]byte{1, 2, 3})
	fmt.Println(err)
	// Output:
	// 00 00 00 00 00 00 f0 3f 00 00 00 00 00 00 00 c0
	// 3f f0 00 00 00 00 00 00 c0 00 00 00 00 00 00 00
	// ( + 1 - 2i ) <nil>
	// FromBytes: cplx: size mismatch: got 3 bytes, want 16
}

func ExampleComplex_CheckedMul() {
	_, ok := cplx.MaxValue[float64]().CheckedMul(cplx.New(2.0, 0.0))
	fmt.Println(ok)

	p, ok := cplx.New(1.0, 2.0).CheckedMul(cplx.New(3.0, 4.0))
	fmt.Println(p, ok)
	// Output:
	// false
	// ( - 5 + 10i ) true
}

func ExampleCast() {
	v, ok := cplx.Cast[int8](cplx.New(127.9, 5.0))
	fmt.Println(v, ok)

	_, ok = cplx.Cast[int8](cplx.New(128.0, 0.0))
	fmt.Println(ok)

	fmt.Println(cplx.As[uint8](cplx.New(300.0, 0.0)))
	// Output:
	// 127 true
	// false
	// 255
}
