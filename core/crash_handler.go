package core

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync"
)

var (
	resetMu sync.Mutex
	resetFn func()
)

// SetTerminalReset registers the function that restores the terminal before a crash report
// The terminal host registers its screen finalizer, other hosts may leave it unset
func SetTerminalReset(fn func()) {
	resetMu.Lock()
	resetFn = fn
	resetMu.Unlock()
}

// runReset calls the registered terminal reset once
func runReset() {
	resetMu.Lock()
	fn := resetFn
	resetFn = nil
	resetMu.Unlock()
	if fn != nil {
		fn()
	}
}

// crashReport formats the panic value and stack, and copies it to the debug log
func crashReport(r any) string {
	report := fmt.Sprintf("space-engineer crashed: %v\n%s", r, debug.Stack())
	log.Print(report)
	return report
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
