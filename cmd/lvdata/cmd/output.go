// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/service"
)

type format string

const (
	formatTable format = "table"
	formatJSON  format = "json"
	formatYAML  format = "yaml"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(s)); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valuesStyle = lipgloss.NewStyle().Bold(true)
)

// report is what generate and stats print.
type report struct {
	Values  []int         `json:"values" yaml:"values"`
	Stats   service.Stats `json:"stats" yaml:"stats"`
	Matches *int          `json:"matches" yaml:"matches"`
}

func newReport(ds *dataset.Dataset, probe []int) report {
	return report{
		Values:  ds.Values(),
		Stats:   service.Describe(ds),
		Matches: service.Matches(ds, probe),
	}
}

// render writes v in format f. Table output needs a tabler.
func render(w io.Writer, f format, v any) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		t, ok := v.(tabler)
		if !ok {
			return fmt.Errorf("%T has no table form", v)
		}
		_, err := fmt.Fprintln(w, t.table())
		return err
	}
}

type tabler interface {
	table() string
}

func (r report) table() string {
	rows := [][]string{
		{"count", strconv.Itoa(r.Stats.Count)},
		{"middle index", strconv.Itoa(r.Stats.MiddleIndex)},
		{"lowest", intCell(r.Stats.Lowest)},
		{"highest", intCell(r.Stats.Highest)},
		{"mean", floatCell(r.Stats.Mean)},
		{"median", floatCell(r.Stats.Median)},
		{"first quartile", floatCell(r.Stats.FirstQuartile)},
		{"third quartile", floatCell(r.Stats.ThirdQuartile)},
		{"range", intCell(r.Stats.Range)},
		{"mode", joinInts(r.Stats.Mode)},
		{"gcd", intCell(r.Stats.GCD)},
		{"lcm", intCell(r.Stats.LCM)},
	}
	if r.Matches != nil {
		rows = append(rows, []string{"matches", strconv.Itoa(*r.Matches)})
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		valuesStyle.Render(joinInts(r.Values)),
		newTable("statistic", "value").Rows(rows...).String(),
	)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func intCell(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
