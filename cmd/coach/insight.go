package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tanarius/Learning-Assistant/internal/insight"
)

var insightCommand = &cobra.Command{
	Use:   "insight",
	Short: "Analyze a codebase and report what it demonstrates you learned",
	RunE:  runInsightCmd,
}

var insightDir string

func init() {
	insightCommand.Flags().StringVarP(&insightDir, "dir", "d", ".", "Directory of source files to analyze")

	rootCmd.AddCommand(insightCommand)
}

func runInsightCmd(_ *cobra.Command, _ []string) error {
	report, err := insight.AnalyzeDir(insightDir)
	if err != nil {
		return err
	}
	if len(report.FilesAnalyzed) == 0 {
		return fmt.Errorf("no Go source files found in %s", insightDir)
	}

	fmt.Print(insight.RenderMarkdown(report))
	return nil
}
