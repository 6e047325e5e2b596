//go:build !wasm

package core

import (
	"fmt"
	"os"
	"strings"
)

// HandleCrash restores the terminal, prints the report in red on stderr and exits with status 1
func HandleCrash(r any) {
	if r == nil {
		return
	}
	runReset()

	report := strings.ReplaceAll(crashReport(r), "\n", "\r\n")
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s\x1b[0m\r\n", report)
	os.Exit(1)
}
