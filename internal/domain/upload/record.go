package upload

import "strings"

// Record maps column names to cell values for one spreadsheet row.
type Record map[string]string

// Table holds parsed tabular data. Columns preserves the header order of
// the source file, Rows preserves file order.
type Table struct {
	Columns []string
	Rows    []Record
}

// Column resolves the first column whose name matches one of the
// candidates, ignoring case.
func (t Table) Column(candidates ...string) (string, bool) {
	for _, name := range t.Columns {
		for _, want := range candidates {
			if strings.EqualFold(name, want) {
				return name, true
			}
		}
	}
	return "", false
}
