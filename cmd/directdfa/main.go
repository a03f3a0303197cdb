package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pingcap/errors"

	"directdfa/internal/syntax"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report prints err, with a marker under the offending offset for regex
// syntax errors.
func report(w io.Writer, err error) {
	fmt.Fprintln(w, "error:", err)
	if se, ok := errors.Cause(err).(*syntax.SyntaxError); ok {
		fmt.Fprintln(w, se.Caret())
	}
}
