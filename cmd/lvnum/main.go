// SPDX-License-Identifier: MIT

// lvnum runs the numerical-methods demos.
//
// Usage:
//
//	lvnum solve system.yaml [--no-pivot] [--split-lu] [--format yaml]
//	lvnum demo
//	lvnum exp 1 5 -5
//	lvnum repr 173 -0x1f 12.867
//	lvnum repr --float 1.567
package main

import (
	"log"

	"github.com/katalvlaran/lvnum/internal/cli"
)

func main() {
	log.SetFlags(0)
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Fatalf("lvnum: %v", err)
	}
}
