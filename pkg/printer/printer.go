package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uilive"
)

// Printer writes command output. Live rewrites the same line on every call
// so a bar rendered once per step appears to fill in place.
type Printer interface {
	Info(string)
	Infof(string, ...any)
	Error(string)
	Errorf(string, ...any)
	Live(string) error
}

type printer struct {
	out    io.Writer
	errOut io.Writer
	live   *uilive.Writer
}

func New(out io.Writer, errOut io.Writer) Printer {
	live := uilive.New()
	live.Out = out
	return &printer{out: out, errOut: errOut, live: live}
}

func NewConsole() Printer {
	return New(os.Stdout, os.Stderr)
}

func (p *printer) Info(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *printer) Infof(s string, a ...any) {
	fmt.Fprintf(p.out, s, a...)
}

func (p *printer) Error(s string) {
	fmt.Fprintln(p.errOut, s)
}

func (p *printer) Errorf(s string, a ...any) {
	fmt.Fprintf(p.errOut, s, a...)
}

// Live replaces the previously written live line with s.
func (p *printer) Live(s string) error {
	if _, err := fmt.Fprintln(p.live, s); err != nil {
		return err
	}
	return p.live.Flush()
}
