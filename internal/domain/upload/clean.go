package upload

import "strings"

// MissingEmailSentinel replaces an absent email so no record is dropped
// for lacking the deduplication key.
const MissingEmailSentinel = "noemail@example.com"

var emailColumnNames = []string{"EmailAddress", "email"}

// Clean normalizes a parsed table: values are whitespace-trimmed, rows
// missing an email get the sentinel address, and rows sharing an email
// are deduplicated with the first occurrence winning. Relative order of
// surviving rows is preserved. Clean is pure, total, and idempotent.
func Clean(t Table) Table {
	columns := make([]string, len(t.Columns))
	for i, name := range t.Columns {
		columns[i] = strings.TrimSpace(name)
	}

	out := Table{Columns: columns}
	keyColumn, hasKey := out.Column(emailColumnNames...)

	seen := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		cleaned := make(Record, len(row))
		for name, value := range row {
			cleaned[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}

		if !hasKey {
			out.Rows = append(out.Rows, cleaned)
			continue
		}

		if cleaned[keyColumn] == "" {
			cleaned[keyColumn] = MissingEmailSentinel
		}

		key := strings.ToLower(cleaned[keyColumn])
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, cleaned)
	}

	return out
}
