package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a candidate pool against job requirements",
	Long: `Scores every candidate in a pool against the job requirements and produces a
stable composite ranking with pool-level insights.

Candidates load from a JSON array file, a directory of candidate JSON files, or
a previously stored screening pool (--job-id with a database URL).

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRank,
}

var (
	rankConfigPath  string
	rankJob         string
	rankCandidates  string
	rankOutput      string
	rankWorkers     int
	rankTopN        int
	rankVerbose     bool
	rankJSONLogs    bool
	rankDatabaseURL string
	rankJobID       string
	rankSave        bool
)

func init() {
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job requirements JSON file (mutually exclusive with --job-id)")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to candidate pool JSON file or directory of candidate files")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	rankCmd.Flags().IntVarP(&rankWorkers, "workers", "w", 0, "Scoring worker pool size (default 4)")
	rankCmd.Flags().IntVar(&rankTopN, "top-n", 0, "Limit output to the top N candidates (0 keeps all)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print formatted ranking and insights")
	rankCmd.Flags().BoolVar(&rankJSONLogs, "json-logs", false, "Emit logs as JSON")
	rankCmd.Flags().StringVar(&rankDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rankCmd.Flags().StringVar(&rankJobID, "job-id", "", "Load the job and its stored candidate pool from the database")
	rankCmd.Flags().BoolVar(&rankSave, "save", false, "Store the job and candidate pool in the database before ranking")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("job") {
		cfg.Job = rankJob
	}
	if cmd.Flags().Changed("candidates") {
		cfg.Candidates = rankCandidates
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = rankOutput
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = rankWorkers
	}
	if cmd.Flags().Changed("top-n") {
		cfg.TopN = rankTopN
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = rankJSONLogs
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = rankDatabaseURL
	}

	useDatabase := rankJobID != ""
	if useDatabase && cfg.Job != "" {
		return fmt.Errorf("cannot use --job-id with --job")
	}
	if !useDatabase && cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in config, or use --job-id)")
	}
	if !useDatabase && cfg.Candidates == "" {
		return fmt.Errorf("--candidates is required (or set 'candidates' in config)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Connect to the database when stored pools are involved
	var database *db.DB
	if useDatabase || rankSave {
		url := cfg.DatabaseURL
		if url == "" {
			url = os.Getenv("DATABASE_URL")
		}
		if url == "" {
			return fmt.Errorf("DATABASE_URL required when using --job-id or --save")
		}

		database, err = db.Connect(ctx, url)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	var job *types.JobRequirements
	var candidates []types.CandidateProfile

	if useDatabase {
		jobID, err := uuid.Parse(rankJobID)
		if err != nil {
			return fmt.Errorf("invalid job-id: %w", err)
		}

		job, err = database.GetJob(ctx, jobID)
		if err != nil {
			return fmt.Errorf("failed to get job: %w", err)
		}
		if job == nil {
			return fmt.Errorf("job not found: %s", jobID)
		}

		candidates, err = database.ListCandidates(ctx, jobID)
		if err != nil {
			return fmt.Errorf("failed to list candidates: %w", err)
		}
	} else {
		job, err = loadJobRequirements(cfg.Job)
		if err != nil {
			return err
		}
		candidates, err = loadCandidatePool(cfg.Candidates)
		if err != nil {
			return err
		}
	}

	if rankSave && !useDatabase {
		jobID, err := database.SaveJob(ctx, *job)
		if err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
		for _, candidate := range candidates {
			if err := database.SaveCandidate(ctx, jobID, candidate); err != nil {
				return fmt.Errorf("failed to save candidate %s: %w", candidate.Name, err)
			}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Stored screening pool (job: %s, candidates: %d)\n", jobID, len(candidates))
	}

	screener := screening.New(screening.Options{
		Workers: cfg.Workers,
		Logger:  log,
	})
	ranked := screener.Rank(ctx, *job, candidates)

	if cfg.TopN > 0 && len(ranked.Ranked) > cfg.TopN {
		ranked.Ranked = ranked.Ranked[:cfg.TopN]
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirements(job)
		printer.PrintRankedList(&ranked)
		printer.PrintInsights(&ranked.Insights)
	}

	return writeOutput(cfg.Output, ranked)
}
