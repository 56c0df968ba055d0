package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Tanarius/Learning-Assistant/internal/catalog"
	"github.com/Tanarius/Learning-Assistant/internal/store"
)

var skillsCommand = &cobra.Command{
	Use:   "skills",
	Short: "List the skill dictionary or your recorded skill levels",
	RunE:  runSkillsCmd,
}

var (
	skillsDataDir string
	skillsCurrent bool
)

func init() {
	skillsCommand.Flags().StringVarP(&skillsDataDir, "data-dir", "d", "Learning_Data", "Directory holding the knowledge base")
	skillsCommand.Flags().BoolVar(&skillsCurrent, "current", false, "Show recorded skill levels instead of the dictionary")

	rootCmd.AddCommand(skillsCommand)
}

func runSkillsCmd(_ *cobra.Command, _ []string) error {
	if skillsCurrent {
		kb := store.New(skillsDataDir).LoadKnowledgeBase()
		if len(kb.SkillsLearned) == 0 {
			fmt.Println("No skills recorded yet. Run an analysis first.")
			return nil
		}

		names := make([]string, 0, len(kb.SkillsLearned))
		for name := range kb.SkillsLearned {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-24s %s\n", name, kb.SkillsLearned[name])
		}
		return nil
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}
	for _, name := range cat.Names() {
		info, _ := cat.Lookup(name)
		fmt.Printf("%-20s %-22s curve=%-8s time=%s\n", name, info.Category, info.LearningCurve, info.TimeToProficiency)
	}
	return nil
}
