// SPDX-License-Identifier: MIT

// Package lvnum is a small collection of elementary numerical methods built
// around a dense float64 matrix type.
//
// Subpackages:
//
//	matrix/   - Dense matrices, validators, products, triangular splits, comparison
//	gauss/    - Gaussian elimination with optional partial pivoting, LU factors
//	series/   - Taylor-series approximation of e^x with a relative stopping rule
//	numrep/   - sign/digit strings for integers and the binary layout of float64
//	cmd/lvnum - command line front end for all of the above
//
// Quick start:
//
//	res, err := gauss.SolveVector(
//		[][]float64{{60, 920, 160}, {240, 40, 720}, {700, 40, 120}},
//		[]float64{192, 720, 688},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.XVec, res.Swaps)
//
// Every solver stage is exported (Validate, Augment, Eliminate, Substitute,
// SplitLU) so intermediate matrices can be inspected. Nothing here logs;
// failures are returned as wrapped errors matchable with errors.Is.
package lvnum
