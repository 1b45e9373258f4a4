// Package output prints launcher diagnostics.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stderr().SupportsColor {
		red, dim, reset = "", "", ""
	}
}

// Diagnostic messages. Each failure mode prints exactly one of these.
const (
	MsgNoExecutablePath = "could not resolve executable path"
	MsgNoResourcesDir   = "could not enter resources directory"
	MsgCouldNotRun      = "could not run."
)

// Printer writes one-line diagnostics.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Stderr returns a Printer writing to the process's standard error.
func Stderr() *Printer {
	return New(os.Stderr)
}

// Fail prints a single "[FAIL] msg: err" line. The error part is omitted when err is nil.
func (p *Printer) Fail(msg string, err error) {
	if err == nil {
		fmt.Fprintf(p.w, "%s[FAIL]%s %s\n", red, reset, msg)
		return
	}
	fmt.Fprintf(p.w, "%s[FAIL]%s %s%s:%s %v\n", red, reset, msg, dim, reset, err)
}
