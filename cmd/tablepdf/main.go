package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	"github.com/flanksource/tablepdf"
	"github.com/flanksource/tablepdf/api"
	"github.com/flanksource/tablepdf/formatters"
	"github.com/flanksource/tablepdf/formatters/svg"
	"github.com/flanksource/tablepdf/render"
	"github.com/flanksource/tablepdf/shutdown"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tablepdf",
		Short: "Render tabular data as a paginated PDF report",
		Long: `tablepdf lays a table out over as many pages as it needs, repeating the column
headers on every page, with a caption above the grid and a summary line below it.

The table, its columns and the report period are read from a YAML or JSON file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			tablepdf.Flags.UseFlags()
			shutdown.Listen()
		},
	}
	tablepdf.BindLoggerFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func loadTable(opts tablepdf.RenderOptions) (api.Table, api.Report, error) {
	if opts.Input == "" {
		return api.Table{}, api.Report{}, fmt.Errorf("--input is required")
	}
	in, err := tablepdf.LoadInput(opts.Input)
	if err != nil {
		return api.Table{}, api.Report{}, err
	}
	if err := opts.Apply(&in); err != nil {
		return api.Table{}, api.Report{}, err
	}
	table, err := in.Table()
	if err != nil {
		return api.Table{}, api.Report{}, err
	}
	return table, in.Report, nil
}

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an input file to a PDF (or SVG preview)",
		Example: `  tablepdf render --input expenses.yaml --output march
  tablepdf render -i expenses.yaml --landscape --page-size Letter -o reports/march.pdf
  tablepdf render -i expenses.yaml --format svg -o preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tablepdf.Flags.RenderOptions
			table, report, err := loadTable(opts)
			if err != nil {
				return err
			}
			options := tablepdf.Options{Format: opts.Format, Log: logger.GetLogger("render")}
			plan, err := tablepdf.Plan(table, options)
			if err != nil {
				return err
			}

			// an interrupted save must not leave a truncated report behind
			out := render.NormalizePath(opts.Output, "."+strings.ToLower(opts.Format))
			files := outputFiles(opts.Format, out, len(plan.Pages))
			done := shutdown.AddHookWithPriority("remove partial "+strings.Join(files, ", "), shutdown.PriorityOutput, func() {
				for _, file := range files {
					_ = os.Remove(file)
				}
			})
			defer done()

			return tablepdf.Generate(table, report, out, options)
		},
	}
	tablepdf.BindAllFlags(cmd.Flags())
	return cmd
}

// outputFiles lists every file a render of pages pages writes to out
func outputFiles(format, out string, pages int) []string {
	if strings.EqualFold(format, "svg") {
		return svg.Files(out, pages)
	}
	return []string{out}
}

func newPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show how the rows of an input file split over pages, without rendering",
		Example: `  tablepdf plan --input expenses.yaml
  tablepdf plan -i expenses.yaml --landscape --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := loadTable(tablepdf.Flags.RenderOptions)
			if err != nil {
				return err
			}
			plan, err := tablepdf.Plan(table, tablepdf.Options{Log: logger.GetLogger("plan")})
			if err != nil {
				return err
			}
			return tablepdf.Print(plan, tablepdf.Flags.FormatOptions)
		},
	}
	tablepdf.BindRenderFlags(cmd.Flags())
	formatters.BindPFlags(cmd.Flags(), &tablepdf.Flags.FormatOptions)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getVersionInfo())
		},
	}
}

func getVersionInfo() string {
	return fmt.Sprintf("tablepdf %s (commit: %s, built: %s, go: %s)",
		version, commit, date, runtime.Version())
}
