package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
)

// namedColors maps colour names accepted in configuration to ANSI
// palette indices. Anything else is handed to lipgloss unchanged, so hex
// ("#ff8800") and 256-colour ("208") values work too.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// Console writes the report as coloured "label value" lines. Labels are
// styled by fact category; values are printed plain.
type Console struct {
	LabelWidth int
	// Style resolves a category to a colour. A nil Style or an empty
	// result leaves the label unstyled.
	Style func(category string) string
	// Profile is the colour capability of the destination; termenv.Ascii
	// disables colour entirely.
	Profile termenv.Profile
}

func (c Console) Export(w io.Writer, r *collector.Report) error {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(c.Profile)

	styles := make(map[string]lipgloss.Style)
	styleFor := func(category string) lipgloss.Style {
		if s, ok := styles[category]; ok {
			return s
		}
		s := renderer.NewStyle()
		if c.Style != nil {
			if color := c.Style(category); color != "" {
				s = s.Foreground(lipgloss.Color(resolveColor(color)))
			}
		}
		styles[category] = s
		return s
	}

	bw := bufio.NewWriter(w)
	for _, s := range Sections(r) {
		for _, f := range s.Fields {
			label := styleFor(f.Category).Render(f.Label)
			fmt.Fprintf(bw, "%s%s%s\n", label, strings.Repeat(" ", padding(f.Label, c.LabelWidth)), f.Text())
		}
	}
	return bw.Flush()
}

func resolveColor(name string) string {
	if code, ok := namedColors[strings.ToLower(name)]; ok {
		return code
	}
	return name
}
