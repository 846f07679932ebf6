package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-screener/internal/types"
)

// SaveJob stores a job requirement record and returns its ID.
func (db *DB) SaveJob(ctx context.Context, job types.JobRequirements) (uuid.UUID, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (job_title, payload)
		 VALUES ($1, $2)
		 RETURNING id`,
		job.JobTitle, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job requirement record by ID. Returns nil without error
// when no such job exists.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobRequirements, error) {
	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT payload FROM jobs WHERE id = $1`, id,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job types.JobRequirements
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}

// SaveCandidate upserts a candidate profile into a job's screening pool.
// The candidate must already carry an ID.
func (db *DB) SaveCandidate(ctx context.Context, jobID uuid.UUID, candidate types.CandidateProfile) error {
	if candidate.ID == uuid.Nil {
		return fmt.Errorf("candidate %q has no ID", candidate.Name)
	}

	payload, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to marshal candidate: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO candidates (id, job_id, name, payload)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET job_id = $2, name = $3, payload = $4`,
		candidate.ID, jobID, candidate.Name, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

// ListCandidates returns every candidate in a job's screening pool, in
// insertion order so re-ranking preserves the original tie-break order.
func (db *DB) ListCandidates(ctx context.Context, jobID uuid.UUID) ([]types.CandidateProfile, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT payload FROM candidates WHERE job_id = $1 ORDER BY created_at, id`, jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]types.CandidateProfile, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		var candidate types.CandidateProfile
		if err := json.Unmarshal(payload, &candidate); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return candidates, nil
}

// DeleteJob removes a job and, via cascade, its screening pool.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}
