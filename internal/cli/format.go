// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/matrix"
)

// outputFormat selects how results are rendered.
type outputFormat string

const (
	formatTable outputFormat = "table"
	formatYAML  outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(s); v {
	case formatTable, formatYAML:
		*f = v
		return nil
	default:
		return errors.Newf("unknown format %q (want %s or %s)", s, formatTable, formatYAML)
	}
}

func (f *outputFormat) Type() string { return "format" }

// formatFloat renders v in the shortest form that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatRow(row []float64) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = formatFloat(v)
	}

	return out
}

// newTable returns a tablewriter configured like the rest of the CLI.
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)

	return table
}

// writeMatrix prints a titled matrix as a table with column indices as headers.
func writeMatrix(w io.Writer, title string, m matrix.Matrix) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return errors.Wrapf(err, "render %s", title)
	}
	header := make([]string, m.Cols()+1)
	header[0] = title
	for j := 1; j < len(header); j++ {
		header[j] = strconv.Itoa(j - 1)
	}
	table := newTable(w, header)
	for i, row := range rows {
		table.Append(append([]string{strconv.Itoa(i)}, formatRow(row)...))
	}
	table.Render()

	return nil
}

// writeVector prints a titled vector as a two-column table.
func writeVector(w io.Writer, title string, v []float64) {
	table := newTable(w, []string{"i", title})
	for i, x := range v {
		table.Append([]string{strconv.Itoa(i), formatFloat(x)})
	}
	table.Render()
}

// writeYAML marshals v as a YAML document.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return enc.Close()
}

func rowsOrNil(m *matrix.Dense) ([][]float64, error) {
	if m == nil {
		return nil, nil
	}

	return matrix.ToRows(m)
}

func fprintf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
