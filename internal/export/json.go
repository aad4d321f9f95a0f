package export

import (
	"bufio"
	"io"

	"github.com/go-tangra/go-tangra-bareinfo/internal/collector"
)

// JSON writes one nested object per section.
//
// Strings are written between double quotes as-is, without escaping.
// Source values are firmware and kernel identifiers, which in practice
// never carry quotes or backslashes.
type JSON struct{}

func (JSON) Export(w io.Writer, r *collector.Report) error {
	bw := bufio.NewWriter(w)
	sections := Sections(r)

	bw.WriteString("{\n")
	for i, s := range sections {
		bw.WriteString(`  "` + s.Name + "\": {\n")
		for j, f := range s.Fields {
			bw.WriteString(`    "` + f.Key + `": `)
			if f.Number {
				bw.WriteString(f.Value)
			} else {
				bw.WriteString(`"` + f.Value + `"`)
			}
			if j < len(s.Fields)-1 {
				bw.WriteString(",")
			}
			bw.WriteString("\n")
		}
		bw.WriteString("  }")
		if i < len(sections)-1 {
			bw.WriteString(",")
		}
		bw.WriteString("\n")
	}
	bw.WriteString("}\n")

	return bw.Flush()
}
