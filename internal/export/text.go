package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
)

// Output file names.
const (
	TextFile = "bareinfo.txt"
	JSONFile = "bareinfo.json"
	HTMLFile = "Bareinfo.html"
)

// DefaultLabelWidth is the label column width of text and console output.
const DefaultLabelWidth = 20

// Text writes one "label value" line per fact without colour.
type Text struct {
	LabelWidth int
}

func (t Text) Export(w io.Writer, r *collector.Report) error {
	bw := bufio.NewWriter(w)
	for _, s := range Sections(r) {
		for _, f := range s.Fields {
			fmt.Fprintf(bw, "%s%s%s\n", f.Label, strings.Repeat(" ", padding(f.Label, t.LabelWidth)), f.Text())
		}
	}
	return bw.Flush()
}

// WriteFile renders r with e into path, truncating any previous contents.
// The write is not atomic: a failure part way leaves a partial file.
func WriteFile(path string, e Exporter, r *collector.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := e.Export(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
