package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single candidate against job requirements",
	Long: `Computes the deterministic ATS score breakdown for one candidate against one
job requirements file and writes the result as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runScore,
}

var (
	scoreConfigPath string
	scoreJob        string
	scoreCandidate  string
	scoreOutput     string
	scoreVerbose    bool
	scoreJSONLogs   bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job requirements JSON file")
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to candidate profile JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score breakdown")
	scoreCmd.Flags().BoolVar(&scoreJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	// Load config file if provided
	var cfg config.Config
	if scoreConfigPath != "" {
		loadedCfg, err := config.LoadConfig(scoreConfigPath)
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
		cfg.Job = scoreJob
	}
	if cmd.Flags().Changed("candidate") {
		cfg.Candidates = scoreCandidate
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = scoreOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = scoreJSONLogs
	}

	if cfg.Job == "" {
		return fmt.Errorf("--job is required (or set 'job' in config)")
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidate is required (or set 'candidates' in config)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	job, err := loadJobRequirements(cfg.Job)
	if err != nil {
		return err
	}
	candidate, err := loadCandidateProfile(cfg.Candidates)
	if err != nil {
		return err
	}

	screener := screening.New(screening.Options{Logger: log})
	result := screener.Score(*job, *candidate)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirements(job)
		printer.PrintScoreResult(candidate.Name, &result)
	}

	return writeOutput(cfg.Output, result)
}
