// Package main performs a basic MET conversion in order to test WASM compilation.
package main

import (
	"fmt"

	"github.com/theory/leaptime/civil"
	"github.com/theory/leaptime/leap"
	"github.com/theory/leaptime/met"
)

func main() {
	// Build a time scale from the built-in leap seconds.
	sc := civil.NewScale(1990, leap.Builtin())

	// Convert a timestamp to mission elapsed time and back.
	conv := met.New(sc, civil.MustParse("2001-01-01"))
	elapsed := conv.Integral(civil.MustParse("2012-07-12 10:51:18"))

	// Show the result.
	//nolint:forbidigo
	fmt.Printf("%d %v\n", elapsed, conv.UTCSplit(elapsed, 0))
}
