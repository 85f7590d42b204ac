// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the pocket tools and
// their command-line front end.
package types

// EmailReport summarizes one extraction run.
type EmailReport struct {
	// Emails holds the distinct matches in ascending code-point order.
	Emails []string `json:"emails" yaml:"emails"`

	// Total counts every match, duplicates included.
	Total int `json:"total" yaml:"total"`

	// Unique counts the distinct matches; always len(Emails).
	Unique int `json:"unique" yaml:"unique"`
}
