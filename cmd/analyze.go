package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"splitkit/internal/analyze"
	"splitkit/internal/analyze/languages"

	"github.com/spf13/cobra"
)

var (
	flagSuggest    bool
	flagTargetSize int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Detect structural markers and suggest split points",
	Long: `Analyze scans a file with per-language line patterns and reports the
functions, classes, imports, and section markers it finds. With --suggest it
also partitions the file into chunks of roughly --target-size lines, snapping
each boundary to the nearest marker, and prints a JSON extraction plan ready
for "splitkit batch --json". In suggest mode the report goes to stderr and
only the plan is written to stdout, so the output pipes cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		analyzer := analyze.New(languages.DefaultRegistry())
		a, err := analyzer.Analyze(args[0])
		if err != nil {
			return err
		}

		if !flagSuggest {
			printAnalysis(os.Stdout, a)
			return nil
		}

		// Keep stdout JSON-only so it can be piped straight into the batch
		// tool; everything human-readable goes to stderr.
		report := os.Stderr
		printAnalysis(report, a)

		s := analyze.Suggest(a, flagTargetSize)
		if s.NoSplit {
			fmt.Fprintf(report, "\n%s\n", dimStyle.Render(fmt.Sprintf(
				"No split needed: %d lines fit the target size of %d.", a.TotalLines, flagTargetSize)))
		}
		printSuggestion(report, s)

		p := analyze.PlanFor(a, s)
		out, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("encode plan: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func printAnalysis(w io.Writer, a *analyze.Analysis) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("File:"), a.File)
	fmt.Fprintf(w, "Total lines: %d\n", a.TotalLines)

	if a.Imports != nil {
		fmt.Fprintf(w, "\nImports: lines %d-%d\n", a.Imports.Start, a.Imports.End)
	}

	printMarkerGroup(w, "Classes", a.Classes())
	printMarkerGroup(w, "Functions", a.Functions())
	printMarkerGroup(w, "Sections", a.Sections())
}

// printMarkerGroup lists the first ten markers of a kind, the same cap the
// report has always had so huge files stay readable.
func printMarkerGroup(w io.Writer, label string, markers []analyze.Marker) {
	if len(markers) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d):\n", label, len(markers))
	shown := markers
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, m := range shown {
		name := m.Name
		if name == "" {
			name = m.Text
		}
		fmt.Fprintf(w, "  Line %4d: %s\n", m.Line, name)
	}
	if rest := len(markers) - len(shown); rest > 0 {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("  ... and %d more", rest)))
	}
}

func printSuggestion(w io.Writer, s *analyze.Suggestion) {
	fmt.Fprintf(w, "\n%s\n", titleStyle.Render(fmt.Sprintf("Suggested splits (target size: %d lines):", flagTargetSize)))
	for i, c := range s.Chunks {
		desc := c.Label
		if desc == "" {
			desc = fmt.Sprintf("chunk %d/%d", i+1, len(s.Chunks))
		}
		fmt.Fprintf(w, "  %d. Lines %4d-%4d (%3d lines): %s\n", i+1, c.Start, c.End, c.Lines(), desc)
	}
}

func init() {
	analyzeCmd.Flags().BoolVar(&flagSuggest, "suggest", false, "suggest split points and print a JSON extraction plan")
	analyzeCmd.Flags().IntVar(&flagTargetSize, "target-size", analyze.DefaultTargetSize, "target lines per split")
	rootCmd.AddCommand(analyzeCmd)
}
