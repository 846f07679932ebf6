// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobRequirements represents a structured job posting produced by an external
// job-description parser. Free-text fields (years of experience, education
// requirements) stay free text; the scoring engine parses them leniently.
type JobRequirements struct {
	JobTitle              string   `json:"job_title"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	YearsOfExperience     string   `json:"years_of_experience,omitempty"`
	EducationRequirements string   `json:"education_requirements,omitempty"`
	KeyResponsibilities   []string `json:"key_responsibilities,omitempty"`
	CriticalKeywords      []string `json:"critical_keywords,omitempty"`
	SeniorityLevel        string   `json:"seniority_level,omitempty"`
	Industry              string   `json:"industry,omitempty"`
}

// Validate validates the JobRequirements using the validator.
// The scoring engine itself tolerates zero values; validation is for
// the CLI and storage boundaries where a job record must at least name a role.
func (j *JobRequirements) Validate() error {
	validate := validator.New()
	return validate.Struct(struct {
		JobTitle string `validate:"required,min=1"`
	}{JobTitle: j.JobTitle})
}

// AllSkills returns the lower-cased union of required and preferred skills.
// Duplicates across the two sets collapse; no dedup guarantee exists on input.
func (j *JobRequirements) AllSkills() []string {
	seen := make(map[string]bool)
	all := make([]string, 0, len(j.RequiredSkills)+len(j.PreferredSkills))
	for _, skill := range append(append([]string{}, j.RequiredSkills...), j.PreferredSkills...) {
		lower := strings.ToLower(strings.TrimSpace(skill))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		all = append(all, lower)
	}
	return all
}
