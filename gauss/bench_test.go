// SPDX-License-Identifier: MIT
package gauss_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/gauss"
)

var sinkRes *gauss.Result

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{16, 64, 128} {
		a, rhs := DiagonallyDominant(n, 1, 42)
		for _, mode := range []struct {
			name string
			opts []gauss.Option
		}{
			{"pivot", nil},
			{"naive", []gauss.Option{gauss.WithoutPivoting()}},
		} {
			b.Run(fmt.Sprintf("n=%d/%s", n, mode.name), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					res, err := gauss.SolveMatrix(a, rhs, mode.opts...)
					if err != nil {
						b.Fatal(err)
					}
					sinkRes = res
				}
			})
		}
	}
}
