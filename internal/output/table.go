package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Tabular results can be printed as a table.
type Tabular interface {
	TableHeader() []string
	TableRows() [][]string
}

// writeTable renders t as an aligned text table.
func writeTable(w io.Writer, t Tabular) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(t.TableHeader())
	table.SetAutoWrapText(false)
	table.AppendBulk(t.TableRows())
	table.Render()
}

// Cell formats a value for a table cell: scalars as text, anything else
// as compact JSON.
func Cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t)
	}
	data, err := json.Marshal(Normalize(v, true))
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}
