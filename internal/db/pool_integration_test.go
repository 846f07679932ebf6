//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

// getTestDB connects using TEST_DATABASE_URL, skipping when unset.
func getTestDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	db, err := Connect(context.Background(), url)
	require.NoError(t, err)
	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func TestIntegration_ScreeningPool_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	job := types.JobRequirements{
		JobTitle:          "Data Engineer",
		RequiredSkills:    []string{"python", "sql"},
		YearsOfExperience: "3-5 years",
	}

	jobID, err := db.SaveJob(ctx, job)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, jobID)
	defer func() { _ = db.DeleteJob(ctx, jobID) }()

	t.Run("get job round-trips payload", func(t *testing.T) {
		loaded, err := db.GetJob(ctx, jobID)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, job, *loaded)
	})

	t.Run("missing job returns nil", func(t *testing.T) {
		loaded, err := db.GetJob(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("candidates round-trip in insertion order", func(t *testing.T) {
		first := types.CandidateProfile{ID: uuid.New(), Name: "First"}
		second := types.CandidateProfile{ID: uuid.New(), Name: "Second"}

		require.NoError(t, db.SaveCandidate(ctx, jobID, first))
		require.NoError(t, db.SaveCandidate(ctx, jobID, second))

		candidates, err := db.ListCandidates(ctx, jobID)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, "First", candidates[0].Name)
		assert.Equal(t, "Second", candidates[1].Name)
	})

	t.Run("candidate upsert replaces payload", func(t *testing.T) {
		candidate := types.CandidateProfile{ID: uuid.New(), Name: "Before"}
		require.NoError(t, db.SaveCandidate(ctx, jobID, candidate))

		candidate.Name = "After"
		require.NoError(t, db.SaveCandidate(ctx, jobID, candidate))

		candidates, err := db.ListCandidates(ctx, jobID)
		require.NoError(t, err)

		names := make([]string, 0, len(candidates))
		for _, c := range candidates {
			names = append(names, c.Name)
		}
		assert.Contains(t, names, "After")
		assert.NotContains(t, names, "Before")
	})
}

func TestSaveCandidate_RequiresID(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	err := db.SaveCandidate(context.Background(), uuid.New(), types.CandidateProfile{Name: "No ID"})
	assert.Error(t, err)
}
