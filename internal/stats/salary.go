// Package stats derives read-only salary and tag statistics from a catalog.
package stats

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	amountPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*(?:\.\d+)?)`)
	rangePattern  = regexp.MustCompile(`\$?(\d+(?:,\d{3})*(?:\.\d+)?)\s*[-–]\s*\$?(\d+(?:,\d{3})*(?:\.\d+)?)`)
)

// SalaryRange is a parsed compensation string. Single values have Min == Max.
type SalaryRange struct {
	Min float64
	Max float64
}

// Avg returns the midpoint of the range.
func (r SalaryRange) Avg() float64 {
	return (r.Min + r.Max) / 2
}

// ParseSalary extracts a numeric range from free-form compensation text such
// as "$30 - $60/hr", "USD 85,000" or "Hourly: $25". It returns false when no
// amount can be found.
func ParseSalary(s string) (SalaryRange, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "not specified" {
		return SalaryRange{}, false
	}

	if strings.Contains(s, "hourly") || strings.Contains(s, "/hr") {
		amounts := amountPattern.FindAllStringSubmatch(s, 2)
		switch len(amounts) {
		case 2:
			return SalaryRange{Min: parseAmount(amounts[0][1]), Max: parseAmount(amounts[1][1])}, true
		case 1:
			v := parseAmount(amounts[0][1])
			return SalaryRange{Min: v, Max: v}, true
		}
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		return SalaryRange{Min: parseAmount(m[1]), Max: parseAmount(m[2])}, true
	}

	if m := amountPattern.FindStringSubmatch(s); m != nil {
		v := parseAmount(m[1])
		return SalaryRange{Min: v, Max: v}, true
	}

	return SalaryRange{}, false
}

func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
