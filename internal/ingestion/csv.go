package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jonathan/job-compare/internal/catalog"
)

// columns holds header positions; -1 marks an absent column.
type columns struct {
	id, title, description, location, compensation, url, tags int
}

func resolveColumns(header []string, m ColumnMap, spec SourceSpec) columns {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}

	find := func(field, name string) int {
		if name == "" {
			return -1
		}
		if i, ok := pos[name]; ok {
			return i
		}
		log.Printf("[ingestion] %s: column %q for %s not in header", spec.Company, name, field)
		return -1
	}

	return columns{
		id:           find("id", m.ID),
		title:        find("title", m.Title),
		description:  find("description", m.Description),
		location:     find("location", m.Location),
		compensation: find("compensation", m.Compensation),
		url:          find("url", m.URL),
		tags:         find("tag_ids", m.Tags),
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ReadCSV reads a company table and maps it onto catalog records. Rows whose
// tag list or HTML cannot be parsed are returned in Source.Rejected; every
// other check is left to catalog validation. Row numbers count data rows
// from 1, excluding the header.
func ReadCSV(r io.Reader, spec SourceSpec) (*catalog.Source, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := resolveColumns(header, spec.Columns, spec)

	src := &catalog.Source{Company: spec.Company}
	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		rec, bad := buildRecord(row, rowNum, cols, spec)
		if bad != nil {
			src.Rejected = append(src.Rejected, bad)
			continue
		}
		src.Rows = append(src.Rows, rec)
	}
	return src, nil
}

func buildRecord(row []string, rowNum int, cols columns, spec SourceSpec) (catalog.Record, *catalog.MalformedRecordError) {
	rec := catalog.Record{
		ID:           cell(row, cols.id),
		Title:        cell(row, cols.title),
		Description:  cell(row, cols.description),
		Location:     cell(row, cols.location),
		Compensation: cell(row, cols.compensation),
		URL:          cell(row, cols.url),
		Row:          rowNum,
	}

	if cols.id < 0 && spec.Columns.ID == "" {
		rec.ID = fmt.Sprintf("%s-%d", spec.Company, rowNum)
	}
	if rec.Location == "" {
		rec.Location = spec.DefaultLocation
	}

	if spec.DescriptionIsHTML {
		text, err := HTMLToText(rec.Description)
		if err != nil {
			return rec, &catalog.MalformedRecordError{
				Company: spec.Company, Row: rowNum, Field: "Description",
				Message: "unreadable HTML", Cause: err,
			}
		}
		rec.Description = text
	} else {
		rec.Description = CleanText(rec.Description)
	}

	ids, err := ParseTagIDs(cell(row, cols.tags))
	if err != nil {
		return rec, &catalog.MalformedRecordError{
			Company: spec.Company, Row: rowNum, Field: "Tags", Cause: err,
		}
	}
	rec.Tags = ids
	return rec, nil
}
