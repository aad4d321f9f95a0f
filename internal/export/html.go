package export

import (
	_ "embed"
	"io"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
)

// viewerHTML loads bareinfo.json from its own directory at page load and
// renders every section it finds.
//
//go:embed assets/viewer.html
var viewerHTML []byte

// HTML writes the static JSON viewer page. The page is the same for every
// report; it only works next to a bareinfo.json written by JSON.
type HTML struct{}

func (HTML) Export(w io.Writer, _ *collector.Report) error {
	_, err := w.Write(viewerHTML)
	return err
}
