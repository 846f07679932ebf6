package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// validateInputFile checks a JSON input file against a schema. Validation
// failures are hard errors; a missing or unloadable schema only warns so the
// CLI stays usable outside the repository checkout.
func validateInputFile(schemaRelPath, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: schema %s not found, skipping input validation\n", schemaRelPath)
		return nil
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%s does not validate against schema: %w", jsonPath, err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate %s (schema loading failed): %v\n", jsonPath, err)
		} else {
			return err
		}
	}

	return nil
}

// loadJobRequirements reads, validates and parses a job requirements file.
func loadJobRequirements(path string) (*types.JobRequirements, error) {
	if err := validateInputFile(schemas.JobRequirementsSchema, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.JobRequirements
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job requirements: %w", err)
	}

	return &job, nil
}

// loadCandidateProfile reads, validates and parses a single candidate file.
func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	if err := validateInputFile(schemas.CandidateProfileSchema, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse candidate JSON: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}
	candidate.EnsureID()

	return &candidate, nil
}

// loadCandidatePool loads candidates from either a JSON array file or a
// directory of per-candidate JSON files. Directory entries load in name
// order so repeated runs see the same input order.
func loadCandidatePool(path string) ([]types.CandidateProfile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat candidates path: %w", err)
	}

	if !info.IsDir() {
		if err := validateInputFile(schemas.CandidatePoolSchema, path); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read candidates file: %w", err)
		}

		var pool []types.CandidateProfile
		if err := json.Unmarshal(data, &pool); err != nil {
			return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
		}
		for i := range pool {
			if err := pool[i].Validate(); err != nil {
				return nil, fmt.Errorf("invalid candidate at index %d: %w", i, err)
			}
			pool[i].EnsureID()
		}
		return pool, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)

	pool := make([]types.CandidateProfile, 0, len(files))
	for _, file := range files {
		candidate, err := loadCandidateProfile(file)
		if err != nil {
			return nil, err
		}
		pool = append(pool, *candidate)
	}

	return pool, nil
}

// writeOutput marshals v with indentation and writes it to the given path,
// or to stdout when path is empty.
func writeOutput(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
