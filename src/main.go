//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"syscall/js"

	"github.com/theory/leaptime/internal/playground"
)

func convert(_ js.Value, args []js.Value) any {
	epochYear := args[0].Int()
	start := args[1].String()
	input := args[2].String()
	opts := args[3].Int()

	return playground.Execute(int64(epochYear), start, input, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("optSeconds", js.ValueOf(playground.OptSeconds))
	js.Global().Set("optFromSeconds", js.ValueOf(playground.OptFromSeconds))
	js.Global().Set("optNormalize", js.ValueOf(playground.OptNormalize))
	js.Global().Set("optMET", js.ValueOf(playground.OptMET))
	js.Global().Set("optUTC", js.ValueOf(playground.OptUTC))
	js.Global().Set("optIndent", js.ValueOf(playground.OptIndent))

	<-stream
}
