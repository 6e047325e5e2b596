//go:build wasm

package core

import "syscall/js"

// HandleCrash reports to the browser console and re-panics, the page cannot exit the process
func HandleCrash(r any) {
	if r == nil {
		return
	}
	runReset()
	js.Global().Get("console").Call("error", crashReport(r))
	panic(r)
}
