// Package types provides type definitions for structured data used throughout the job-compare system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Tag is a normalized skill category attached to jobs.
type Tag struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
