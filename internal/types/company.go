// Package types provides type definitions for structured data used throughout the job-compare system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Company identifies the platform a job listing was collected from.
type Company string

// Known companies, declared in priority order.
const (
	CompanyMercor     Company = "mercor"
	CompanyAfterquery Company = "afterquery"
	CompanyAlignerr   Company = "alignerr"
	CompanyHandshake  Company = "handshake"
	CompanyOutlier    Company = "outlier"
	CompanyInvisible  Company = "invisible"
)

// companyPriority is the resolution order for global lookups and the
// order of the cross-company job listing.
var companyPriority = []Company{
	CompanyMercor,
	CompanyAfterquery,
	CompanyAlignerr,
	CompanyHandshake,
	CompanyOutlier,
	CompanyInvisible,
}

// Companies returns all known companies in priority order.
func Companies() []Company {
	out := make([]Company, len(companyPriority))
	copy(out, companyPriority)
	return out
}

// Priority returns the position of c in the priority order, or -1 if c is unknown.
func (c Company) Priority() int {
	for i, known := range companyPriority {
		if known == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is a known company.
func (c Company) Valid() bool {
	return c.Priority() >= 0
}

// ParseCompany normalizes s and returns the matching company.
func ParseCompany(s string) (Company, error) {
	c := Company(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown company %q", s)
	}
	return c, nil
}
