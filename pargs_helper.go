package pargs

import (
	"io"
	"os"
)

var stdoutWriter io.Writer = os.Stdout
var stderrWriter io.Writer = os.Stderr

// SetStdoutWriter allows overriding the stdout writer for testing or custom output
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter allows overriding the stderr writer for testing or custom output
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}
