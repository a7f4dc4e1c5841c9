package scrape

// Table is an ordered grid of string cells. The empty string is the null
// cell: a value the source page did not have. Rows keep the order they were
// parsed in; nothing is sorted or deduplicated.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Get returns the cell at row i under the named column, or "" when the
// column is absent from this table.
func (t Table) Get(i int, column string) string {
	j := t.index(column)
	if j < 0 || j >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][j]
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// prepend returns a copy of t with a new leading column holding the same
// value in every row. Used to tag rows with the year or player they came from.
func (t Table) prepend(column, value string) Table {
	out := Table{Columns: append([]string{column}, t.Columns...)}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, append([]string{value}, row...))
	}
	return out
}

// Merge combines tables by column union: the output columns are the union of
// all input columns in first-seen order, and the output rows are the inputs'
// rows concatenated in input order, with cells blank under columns their
// source table lacked. Merge is associative and deterministic.
func Merge(tables ...Table) Table {
	var out Table
	for _, t := range tables {
		for _, c := range t.Columns {
			if out.index(c) < 0 {
				out.Columns = append(out.Columns, c)
			}
		}
	}
	for _, t := range tables {
		for i := range t.Rows {
			row := make([]string, len(out.Columns))
			for j, c := range out.Columns {
				row[j] = t.Get(i, c)
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
