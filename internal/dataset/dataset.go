// Package dataset loads delimited tabular files for analysis prompts.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// Table is an in-memory view of a delimited data file.
type Table struct {
	Header []string
	Rows   [][]string
}

// Load parses a CSV file into a Table. The first record is treated as the
// header. Unparseable input (ragged rows, broken quoting) is an error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing %s: empty data file", path)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Render produces a column-aligned textual dump of the table with a row
// index column, suitable for inclusion in a prompt.
func (t *Table) Render() string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\t%s\n", strings.Join(t.Header, "\t"))
	for i, row := range t.Rows {
		fmt.Fprintf(w, "%d\t%s\n", i, strings.Join(row, "\t"))
	}
	w.Flush()

	return strings.TrimRight(buf.String(), "\n")
}
