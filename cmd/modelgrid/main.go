// Package main provides the modelgrid CLI: model-driven type resolution,
// conformance checks, and tagged-object inspection from the command line.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := exitUserError
		var se sysError
		if errors.As(err, &se) {
			code = exitSysError
		}
		os.Exit(code)
	}
}
