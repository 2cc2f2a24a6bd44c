package ufs

import (
	"fmt"
	"strconv"
	"strings"
)

// AxisSummary describes one axis for reports.
type AxisSummary struct {
	Label string  `json:"label"`
	Units string  `json:"units"`
	Count int     `json:"count"`
	First float64 `json:"first"`
	Last  float64 `json:"last"`
}

// Summary is a compact description of a document, used for logging and the
// inspect command.
type Summary struct {
	Version     string      `json:"version"`
	Axis1       AxisSummary `json:"axis1"`
	Axis2       AxisSummary `json:"axis2"`
	DataLabel   string      `json:"data_label"`
	DataKind    uint32      `json:"data_kind"`
	Rows        int         `json:"rows"`
	Cols        int         `json:"cols"`
	Metadata    string      `json:"metadata"`
	Fingerprint string      `json:"fingerprint,omitempty"`
}

// Summary returns the document summary. The fingerprint is left empty; it
// belongs to an encoding, not to the model.
func (d *Document) Summary() Summary {
	rows, cols := d.Shape()

	return Summary{
		Version:   d.Version,
		Axis1:     summarizeAxis(d.Axis1),
		Axis2:     summarizeAxis(d.Axis2),
		DataLabel: d.DataLabel,
		DataKind:  d.DataKind,
		Rows:      rows,
		Cols:      cols,
		Metadata:  d.Metadata,
	}
}

func summarizeAxis(a Axis) AxisSummary {
	first, last, _ := a.Bounds()

	return AxisSummary{
		Label: a.Label,
		Units: a.Units,
		Count: a.Len(),
		First: first,
		Last:  last,
	}
}

// String renders the summary as the multi-line report printed per converted file.
func (s Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Version string: %s\n", s.Version)
	fmt.Fprintf(&b, "Axis1: %s\n", s.Axis1)
	fmt.Fprintf(&b, "Axis2: %s\n", s.Axis2)
	fmt.Fprintf(&b, "Data: %s %d x %d\n", s.DataLabel, s.Rows, s.Cols)
	b.WriteString(s.Metadata)

	return b.String()
}

func (a AxisSummary) String() string {
	return fmt.Sprintf("%s, %d values, %s to %s %s",
		a.Label, a.Count, formatBound(a.First), formatBound(a.Last), a.Units)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
