package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/wmiitile/internal/cli/output"
	"github.com/bnema/wmiitile/internal/cli/styles"
	"github.com/bnema/wmiitile/internal/logging"
	"github.com/bnema/wmiitile/internal/script"
	"github.com/bnema/wmiitile/pkg/wmii"
)

var (
	runFormat        string
	runPreview       bool
	runPreviewWidth  int
	runPreviewHeight int
	runJobs          int
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Replay layout scenario scripts",
	Long: `Run one or more scenario scripts, each against its own fresh layout.

A scenario is a line-oriented list of commands:

  add a                 # manage window a
  shuffle_right         # move the focused window one column right
  expect columns 2      # fail unless there are two columns
  expect focus a

Scripts run in parallel. The final snapshot and placements of each scenario
are printed; the command fails if any scenario fails.

Examples:
  wmiitile run scenarios/*.wmii
  wmiitile run --format yaml shuffle.wmii
  wmiitile run --preview stacked.wmii`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "Output format: text, json, yaml")
	runCmd.Flags().BoolVarP(&runPreview, "preview", "p", false, "Draw the final layout (text format only)")
	runCmd.Flags().IntVar(&runPreviewWidth, "preview-width", 60, "Preview width in cells")
	runCmd.Flags().IntVar(&runPreviewHeight, "preview-height", 14, "Preview height in cells")
	runCmd.Flags().IntVarP(&runJobs, "jobs", "j", runtime.NumCPU(), "Maximum scenarios run at once")
}

// scenarioReport is the outcome of one script file.
type scenarioReport struct {
	File   string         `json:"file" yaml:"file"`
	OK     bool           `json:"ok" yaml:"ok"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
	Result *script.Result `json:"result,omitempty" yaml:"result,omitempty"`

	err error
}

func runScenarios(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	format, err := output.ParseFormat(runFormat)
	if err != nil {
		return err
	}

	reports, err := runScenarioFiles(app.Ctx(), args, app.LayoutOptions(), app.Screen(), runJobs)
	if err != nil {
		return err
	}

	if format.Structured() {
		if err := output.Write(cmd.OutOrStdout(), format, reports); err != nil {
			return err
		}
	} else {
		previewWidth := 0
		if runPreview {
			previewWidth = runPreviewWidth
		}
		renderReports(cmd.OutOrStdout(), styles.NewRunRenderer(app.Theme), reports, previewWidth, runPreviewHeight)
	}

	return failedScenarios(reports)
}

// runScenarioFiles parses and runs every path with at most jobs scenarios
// in flight. A failing scenario does not stop the others; the returned
// error is reserved for cancellation.
func runScenarioFiles(
	ctx context.Context,
	paths []string,
	opts wmii.Options,
	screen wmii.Rect,
	jobs int,
) ([]scenarioReport, error) {
	log := logging.FromContext(ctx)
	reports := make([]scenarioReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, path := range paths {
		g.Go(func() error {
			reports[i] = runScenarioFile(gctx, path, opts, screen)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run scenarios: %w", err)
	}

	log.Debug().Int("scenarios", len(paths)).Msg("scenario run finished")
	return reports, nil
}

func runScenarioFile(ctx context.Context, path string, opts wmii.Options, screen wmii.Rect) scenarioReport {
	report := scenarioReport{File: path}

	commands, err := script.ParseFile(path)
	if err != nil {
		report.err = err
		report.Error = err.Error()
		return report
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	result, err := script.NewRunner(name, opts, screen).Run(ctx, commands)
	report.Result = result
	if err != nil {
		report.err = err
		report.Error = err.Error()
		return report
	}

	report.OK = true
	return report
}

func renderReports(w io.Writer, renderer *styles.RunRenderer, reports []scenarioReport, previewWidth, previewHeight int) {
	for _, r := range reports {
		summary := styles.ScenarioSummary{Name: r.File, Err: r.err}
		if r.Result != nil {
			summary.Steps = r.Result.Steps
			summary.Expectations = r.Result.Expectations
			summary.Snapshot = r.Result.Snapshot
			summary.Placements = r.Result.Placements
		}
		fmt.Fprintln(w, renderer.Render(summary, previewWidth, previewHeight))
	}
}

func failedScenarios(reports []scenarioReport) error {
	failed := 0
	for _, r := range reports {
		if !r.OK {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d scenarios failed", failed, len(reports))
}

