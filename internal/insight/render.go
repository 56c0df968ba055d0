package insight

import (
	"fmt"
	"sort"
	"strings"
)

// RenderMarkdown formats a report as a Markdown learning summary.
func RenderMarkdown(r Report) string {
	var sb strings.Builder

	sb.WriteString("# What You Learned\n\n")
	fmt.Fprintf(&sb, "Analyzed %d source files.\n\n", len(r.FilesAnalyzed))

	if len(r.Concepts) > 0 {
		sb.WriteString("## Concepts Demonstrated\n\n")
		for _, c := range r.Concepts {
			fmt.Fprintf(&sb, "- %s\n", humanize(c))
		}
		sb.WriteString("\n")
	}

	if len(r.Patterns) > 0 {
		sb.WriteString("## Patterns In Your Code\n\n")
		for _, p := range r.Patterns {
			fmt.Fprintf(&sb, "- **%s**: %s (e.g. `%s`)\n", p.Name, p.Description, p.Example)
		}
		sb.WriteString("\n")
	}

	if len(r.Skills) > 0 {
		sb.WriteString("## Demonstrated Skills\n\n")
		sb.WriteString("| Skill | Level |\n|---|---|\n")
		for _, skill := range sortedSkillNames(r) {
			fmt.Fprintf(&sb, "| %s | %s |\n", humanize(skill), r.Skills[skill])
		}
		sb.WriteString("\n")
	}

	if len(r.InterviewTopics) > 0 {
		sb.WriteString("## Interview Talking Points\n\n")
		for _, t := range r.InterviewTopics {
			fmt.Fprintf(&sb, "- %s\n", humanize(t))
		}
		sb.WriteString("\n")
	}

	if len(r.Imports) > 0 {
		sb.WriteString("## Libraries And Packages Used\n\n")
		fmt.Fprintf(&sb, "%s\n", strings.Join(r.Imports, ", "))
	}

	return sb.String()
}

func sortedSkillNames(r Report) []string {
	names := make([]string, 0, len(r.Skills))
	for name := range r.Skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// humanize turns a snake_case token into a readable phrase.
func humanize(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}
