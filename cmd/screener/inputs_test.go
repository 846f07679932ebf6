package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJobRequirements(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "job.json", `{
		"job_title": "Backend Engineer",
		"required_skills": ["go", "postgres"],
		"preferred_skills": ["kubernetes"],
		"years_of_experience": "3-5 years"
	}`)

	job, err := loadJobRequirements(path)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, []string{"go", "postgres"}, job.RequiredSkills)
	assert.Equal(t, "3-5 years", job.YearsOfExperience)
}

func TestLoadJobRequirements_MissingFile(t *testing.T) {
	_, err := loadJobRequirements(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadJobRequirements_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "job.json", `{"job_title": `)

	_, err := loadJobRequirements(path)
	assert.Error(t, err)
}

func TestLoadCandidateProfile_AssignsID(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "candidate.json", `{
		"name": "Jane Doe",
		"skills": ["go"]
	}`)

	candidate, err := loadCandidateProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", candidate.Name)
	assert.NotEqual(t, uuid.Nil, candidate.ID)
}

func TestLoadCandidatePool_ArrayFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "pool.json", `[
		{"name": "Alice", "skills": ["go"]},
		{"name": "Bob", "skills": ["python"]}
	]`)

	pool, err := loadCandidatePool(path)
	require.NoError(t, err)
	require.Len(t, pool, 2)

	assert.Equal(t, "Alice", pool[0].Name)
	assert.Equal(t, "Bob", pool[1].Name)
	assert.NotEqual(t, uuid.Nil, pool[0].ID)
}

func TestLoadCandidatePool_Directory(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "02_bob.json", `{"name": "Bob"}`)
	writeTestFile(t, dir, "01_alice.json", `{"name": "Alice"}`)
	writeTestFile(t, dir, "notes.txt", "not a candidate")

	pool, err := loadCandidatePool(dir)
	require.NoError(t, err)
	require.Len(t, pool, 2)

	// Lexicographic file order keeps input order stable across runs.
	assert.Equal(t, "Alice", pool[0].Name)
	assert.Equal(t, "Bob", pool[1].Name)
}

func TestLoadCandidatePool_MissingPath(t *testing.T) {
	_, err := loadCandidatePool(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWriteOutput_ToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, writeOutput(path, map[string]int{"a": 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a": 1`)
}
