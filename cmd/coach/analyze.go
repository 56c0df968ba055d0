package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tanarius/Learning-Assistant/internal/catalog"
	"github.com/Tanarius/Learning-Assistant/internal/config"
	"github.com/Tanarius/Learning-Assistant/internal/pipeline"
	"github.com/Tanarius/Learning-Assistant/internal/recommend"
	"github.com/Tanarius/Learning-Assistant/internal/report"
	"github.com/Tanarius/Learning-Assistant/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full skill gap analysis over generated job applications",
	Long: `Scans the generated-applications directory, compares required skills against your current skill levels, and renders prioritized gaps, learning paths, and recommendations.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeAppsDir    string
	analyzeDataDir    string
	analyzeCodebase   string
	analyzeAPIKey     string
	analyzeOutput     string
	analyzeVerbose    bool
	analyzeNoAI       bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&analyzeAppsDir, "apps-dir", "a", "", "Directory of generated job applications")
	analyzeCommand.Flags().StringVarP(&analyzeDataDir, "data-dir", "d", "", "Directory for knowledge base and saved analyses")
	analyzeCommand.Flags().StringVar(&analyzeCodebase, "codebase", "", "Codebase to analyze for current skills (optional)")
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Report format: markdown or json")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress")
	analyzeCommand.Flags().BoolVar(&analyzeNoAI, "no-ai", false, "Skip the AI call and use template recommendations")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	var generator recommend.Generator
	if cfg.APIKey != "" && !cfg.NoAI {
		gemini, err := recommend.NewGeminiGenerator(ctx, cfg.APIKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: AI disabled: %v\n", err)
		} else {
			defer gemini.Close()
			generator = gemini
		}
	}

	opts := pipeline.Options{
		AppsDir:        cfg.AppsDir,
		DataDir:        cfg.DataDir,
		CodebasePath:   cfg.Codebase,
		Catalog:        cat,
		Generator:      generator,
		BaselineSkills: parseBaseline(cfg.BaselineSkills),
	}
	if cfg.Verbose {
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	result, err := pipeline.Run(ctx, opts)
	if errors.Is(err, pipeline.ErrNoJobRecords) {
		return fmt.Errorf("no job applications found in %s - generate job applications first", cfg.AppsDir)
	}
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	switch cfg.Output {
	case "json":
		data, err := json.MarshalIndent(result.Analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
	default:
		fmt.Print(report.Markdown(result.Analysis))
	}

	if cfg.Verbose {
		printer := report.NewPrinter(os.Stderr)
		printer.PrintGaps(result.Analysis.PrioritizedGaps)
		printer.PrintReadiness(result.Analysis.OverallReadiness)
	}
	if result.SavedPath != "" {
		fmt.Fprintf(os.Stderr, "Saved analysis to %s\n", result.SavedPath)
	}
	return nil
}

// loadAnalyzeConfig merges config file values, CLI flags, env vars, and
// defaults, in increasing flag priority.
func loadAnalyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.Load(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("apps-dir") {
		cfg.AppsDir = analyzeAppsDir
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = analyzeDataDir
	}
	if cmd.Flags().Changed("codebase") {
		cfg.Codebase = analyzeCodebase
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("no-ai") {
		cfg.NoAI = analyzeNoAI
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		AppsDir: "Generated_Applications",
		DataDir: "Learning_Data",
		Output:  "markdown",
	})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseBaseline converts configured baseline skill levels, dropping empty
// names. Unknown level tokens map to none.
func parseBaseline(raw map[string]string) map[string]types.SkillLevel {
	if len(raw) == 0 {
		return nil
	}
	baseline := make(map[string]types.SkillLevel, len(raw))
	for skill, level := range raw {
		if skill == "" {
			continue
		}
		baseline[skill] = types.ParseSkillLevel(level)
	}
	return baseline
}
