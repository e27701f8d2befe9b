// Package report writes scan results and diagnostics.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/samuli/dirlist/internal/model"
)

// Print writes one path per line in the order the result set holds them
func Print(w io.Writer, rs *model.ResultSet) error {
	bw := bufio.NewWriter(w)
	for _, e := range rs.Entries() {
		if _, err := bw.WriteString(e.Path); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Diagnostics writes error and warning lines, styled on a terminal
type Diagnostics struct {
	w      io.Writer
	styled bool
	styles styles
}

// NewDiagnostics creates a diagnostics writer for w
func NewDiagnostics(w io.Writer) *Diagnostics {
	d := &Diagnostics{w: w, styled: isTerminal(w)}
	if d.styled {
		d.styles = newStyles(lipgloss.NewRenderer(w))
	}
	return d
}

// Error reports a failure that ends the run
func (d *Diagnostics) Error(err error) {
	d.write("error", d.styles.errorLabel, err)
}

// Warn reports a path that was skipped
func (d *Diagnostics) Warn(err error) {
	d.write("warning", d.styles.warnLabel, err)
}

func (d *Diagnostics) write(label string, style lipgloss.Style, err error) {
	if !d.styled {
		fmt.Fprintf(d.w, "%s: %v\n", label, err)
		return
	}
	fmt.Fprintf(d.w, "%s %s\n", style.Render(label+":"), d.styles.message.Render(err.Error()))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
