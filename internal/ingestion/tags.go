package ingestion

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTagIDs parses a comma-separated list of tag ids such as "7, 19".
// Blank input yields an empty list. Any token that is not a positive integer
// is an error.
func ParseTagIDs(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid tag id %q", part)
		}
		if id <= 0 {
			return nil, fmt.Errorf("tag id must be positive, got %d", id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
