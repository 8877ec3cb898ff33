package cmd

import (
	"fmt"
	"os"
	"time"

	"splitkit/internal/batch"
	"splitkit/internal/plan"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	flagJSON  string
	flagPlan  string
	flagQuiet bool
)

var batchCmd = &cobra.Command{
	Use:   "batch (--json <path> | --plan <json>)",
	Short: "Apply an extraction plan",
	Long: `Batch runs every request of an extraction plan in order, continuing
past individual failures. The plan is a JSON array of objects with keys
source, target, start, end, and optional mode ("copy" or "move", default
copy) and create_dirs. Exit status is zero only if every request succeeded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (flagJSON == "") == (flagPlan == "") {
			return fmt.Errorf("exactly one of --json and --plan is required")
		}

		var (
			p   plan.Plan
			err error
		)
		if flagJSON != "" {
			p, err = plan.Load(flagJSON)
		} else {
			p, err = plan.Parse([]byte(flagPlan))
		}
		if err != nil {
			return err
		}
		if len(p) == 0 {
			fmt.Println(dimStyle.Render("Plan is empty; nothing to do."))
			return nil
		}

		bar := newBatchBar(len(p))
		summary := batch.Run(p, func(r batch.ItemResult) {
			if bar != nil {
				bar.Add(1)
			}
		})
		if bar != nil {
			bar.Finish()
			fmt.Println()
		}

		for _, f := range summary.Failures() {
			fmt.Fprintf(os.Stderr, "%s request %d (%s -> %s, lines %d-%d): %v\n",
				errorStyle.Render("✗"),
				f.Index+1, f.Item.Source, f.Item.Target, f.Item.Start, f.Item.End, f.Err)
		}

		line := fmt.Sprintf("Completed: %d successful, %d failed", summary.Succeeded, summary.Failed)
		if summary.AllOK() {
			fmt.Println(successStyle.Render(line))
			return nil
		}
		fmt.Println(warnStyle.Render(line))
		return fmt.Errorf("%d of %d requests failed", summary.Failed, len(p))
	},
}

func newBatchBar(total int) *progressbar.ProgressBar {
	if flagQuiet {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Extracting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}

func init() {
	batchCmd.Flags().StringVarP(&flagJSON, "json", "j", "", "path to a JSON plan file")
	batchCmd.Flags().StringVarP(&flagPlan, "plan", "p", "", "inline JSON plan")
	batchCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the progress bar")
	rootCmd.AddCommand(batchCmd)
}
