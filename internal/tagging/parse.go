package tagging

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/jonathan/job-compare/internal/llm"
	"github.com/jonathan/job-compare/internal/tags"
)

// CountMismatchError means the model answered with the wrong number of rows.
type CountMismatchError struct {
	Want int
	Got  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("expected %d tag lines, got %d", e.Want, e.Got)
}

var (
	// An optional "3." or "3)" numbering prefix followed by the answer.
	tagLine = regexp.MustCompile(`^\s*(?:\d+\s*[.)-]\s+)?(.+?)\s*$`)
	idList  = regexp.MustCompile(`^\d{1,3}(?:\s*,\s*\d{1,3})*$`)
)

// noneAnswers are spelled-out answers that mean the catch-all tag.
var noneAnswers = map[string]bool{
	"none of the above categories": true,
	"none of the above":            true,
	"none":                         true,
}

// ParseResponse turns a model answer into one id list per job. It accepts a
// JSON array of {"tags": [...]} objects or plain lines of comma-separated ids.
// Lines that are neither are ignored. At most maxTags ids are kept per row;
// an empty row means no tag fit.
func ParseResponse(raw string, expected, maxTags int) ([][]int, error) {
	rows, ok := parseJSON(raw)
	if !ok {
		rows = parseLines(raw)
	}

	if len(rows) != expected {
		return nil, &CountMismatchError{Want: expected, Got: len(rows)}
	}
	for i := range rows {
		if maxTags > 0 && len(rows[i]) > maxTags {
			rows[i] = rows[i][:maxTags]
		}
	}
	return rows, nil
}

func parseJSON(raw string) ([][]int, bool) {
	cleaned := llm.CleanJSONBlock(raw)
	if !strings.HasPrefix(cleaned, "[") {
		return nil, false
	}
	var items []struct {
		Tags []int `json:"tags"`
	}
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, false
	}
	rows := make([][]int, len(items))
	for i, item := range items {
		rows[i] = dedupe(item.Tags)
	}
	return rows, true
}

func parseLines(raw string) [][]int {
	rows := make([][]int, 0)
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := tagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		answer := strings.TrimSpace(m[1])

		if noneAnswers[strings.ToLower(strings.TrimRight(answer, "."))] {
			rows = append(rows, []int{tags.NoneOfTheAbove})
			continue
		}
		if !idList.MatchString(answer) {
			continue
		}

		var ids []int
		for _, tok := range strings.Split(answer, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(tok))
			if err == nil {
				ids = append(ids, id)
			}
		}
		rows = append(rows, dedupe(ids))
	}
	return rows
}

// dedupe keeps the first occurrence of each id, preserving model order.
func dedupe(ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
