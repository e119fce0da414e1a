package tagging

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TagColumn is the column the tagger writes.
const TagColumn = "tag_ids"

// Table is a CSV file held in memory with its header.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads a CSV with a header row. Short rows are padded so every
// row has one cell per header column.
func ReadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	t := &Table{Header: header}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(t.Rows)+1, err)
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// Column returns the index of name, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return -1
}

// JobTexts builds the text the model sees for each row: the non-empty cells
// of cols joined by two spaces, or of every column when cols is empty. The
// tag column itself is never included.
func (t *Table) JobTexts(cols []string) ([]string, error) {
	idx := make([]int, 0, len(t.Header))
	if len(cols) == 0 {
		for i, h := range t.Header {
			if !strings.EqualFold(h, TagColumn) {
				idx = append(idx, i)
			}
		}
	}
	for _, c := range cols {
		i := t.Column(c)
		if i < 0 {
			return nil, fmt.Errorf("column %q not found", c)
		}
		idx = append(idx, i)
	}

	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		parts := make([]string, 0, len(idx))
		for _, i := range idx {
			if i < len(row) {
				if v := strings.TrimSpace(row[i]); v != "" {
					parts = append(parts, v)
				}
			}
		}
		out[r] = strings.Join(parts, "  ")
	}
	return out, nil
}

// SetColumn writes values into the named column, appending it if needed.
func (t *Table) SetColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("have %d values for %d rows", len(values), len(t.Rows))
	}
	col := t.Column(name)
	if col < 0 {
		t.Header = append(t.Header, name)
		col = len(t.Header) - 1
	}
	for i := range t.Rows {
		for len(t.Rows[i]) <= col {
			t.Rows[i] = append(t.Rows[i], "")
		}
		t.Rows[i][col] = values[i]
	}
	return nil
}

// Write writes the table as CSV.
func (t *Table) Write(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return err
	}
	return writer.Error()
}

// FormatIDs renders ids the way the ingestion reader parses them.
func FormatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// TagCSV reads a CSV from r, tags every row and writes it to w with a
// tag_ids column. cols selects the columns shown to the model.
func (t *Tagger) TagCSV(ctx context.Context, r io.Reader, w io.Writer, cols []string) (int, error) {
	table, err := ReadTable(r)
	if err != nil {
		return 0, err
	}
	texts, err := table.JobTexts(cols)
	if err != nil {
		return 0, err
	}

	assigned, err := t.TagAll(ctx, texts)
	if err != nil {
		return 0, err
	}

	values := make([]string, len(assigned))
	for i, ids := range assigned {
		values[i] = FormatIDs(ids)
	}
	if err := table.SetColumn(TagColumn, values); err != nil {
		return 0, err
	}
	if err := table.Write(w); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}
	return len(table.Rows), nil
}

// TagFile tags inPath and writes the result to outPath. The output is written
// to a temporary file first so a failed run never leaves a partial file.
func (t *Tagger) TagFile(ctx context.Context, inPath, outPath string, cols []string) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".tagging-*.csv")
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := t.TagCSV(ctx, in, tmp, cols)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("writing output: %w", closeErr)
	}
	if err != nil {
		return 0, err
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return 0, fmt.Errorf("saving output: %w", err)
	}
	log.Printf("[tagging] saved %s (%d rows)", outPath, n)
	return n, nil
}
