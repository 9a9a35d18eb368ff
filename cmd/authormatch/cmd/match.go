package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/authormatch"
	"github.com/agentstation/authormatch/internal/cmd/globals"
	"github.com/agentstation/authormatch/internal/cmd/output"
	"github.com/agentstation/authormatch/pkg/errors"
	"github.com/agentstation/authormatch/pkg/export"
	"github.com/agentstation/authormatch/pkg/logging"
	"github.com/agentstation/authormatch/pkg/reconcile"
)

var (
	templatePath        string
	csvPath             string
	xlsxPath            string
	synthesizeUnmatched bool
	matchKeys           string
	sortStrategy        string
)

// matchCmd represents the match command.
var matchCmd = &cobra.Command{
	Use:   "match --template <roster> <data-file> [data-file...]",
	Short: "Match data files against a template roster",
	Long: `Match reads a template roster and one or more data files (comma- or
tab-delimited, header row required), matches data rows to template rows
on email address and author id, and merges record identifiers into
copies of the matched rows.

Data files are read strictly in the order given, so the output is
reproducible run-to-run for the same inputs. Any unreadable file aborts
the whole run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVarP(&templatePath, "template", "t", "", "template roster file (required)")
	_ = matchCmd.MarkFlagRequired("template")

	matchCmd.Flags().StringVar(&csvPath, "csv", "", "write CSV export to this path")
	matchCmd.Flags().Lookup("csv").NoOptDefVal = export.DefaultCSVFilename
	matchCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write XLSX export to this path")
	matchCmd.Flags().Lookup("xlsx").NoOptDefVal = export.DefaultXLSXFilename

	matchCmd.Flags().BoolVar(&synthesizeUnmatched, "synthesize-unmatched", false,
		"create minimal rows for data rows matching no template row")
	matchCmd.Flags().StringVar(&matchKeys, "match-keys", "",
		"identifier families to match on: email, authorid, both (default both)")
	matchCmd.Flags().StringVar(&sortStrategy, "sort", "",
		"output ordering: original-first, email-first, authorid-first (default original-first)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	template, err := os.ReadFile(templatePath)
	if err != nil {
		return errors.WrapIO("read", templatePath, err)
	}

	// Data files are read strictly sequentially; one failure aborts the run.
	dataFiles := make([][]byte, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.WrapIO("read", path, err)
		}
		dataFiles = append(dataFiles, data)
	}

	result, err := authormatch.Reconcile(template, dataFiles, matchOptions()...)
	if err != nil {
		return errors.NewReconcileError("match", err)
	}

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}
	if !flags.Quiet {
		formatter := output.NewFormatter(output.DetectFormat(string(format)))
		if err := formatter.Format(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Summary())

	return writeExports(result)
}

// matchOptions translates flags and config defaults into engine options.
func matchOptions() []authormatch.Option {
	var opts []authormatch.Option

	if synthesizeUnmatched || viper.GetBool("synthesize_unmatched") {
		opts = append(opts, authormatch.WithSynthesizeUnmatched(true))
	}
	if keys := firstNonEmpty(matchKeys, viper.GetString("match_keys")); keys != "" {
		opts = append(opts, authormatch.WithMatchKeys(reconcile.MatchKeys(keys)))
	}
	if strategy := firstNonEmpty(sortStrategy, viper.GetString("sort_strategy")); strategy != "" {
		opts = append(opts, authormatch.WithSortStrategy(reconcile.SortStrategy(strategy)))
	}

	return opts
}

// writeExports writes the requested CSV/XLSX files. An XLSX failure
// falls back to the CSV path with a user-visible notice.
func writeExports(result *reconcile.Result) error {
	path := csvPath
	if path == export.DefaultCSVFilename && synthesizeUnmatched {
		path = export.PopulatedCSVFilename
	}

	if xlsxPath != "" {
		if err := writeXLSXFile(xlsxPath, result); err != nil {
			logging.Warn().Err(err).Msg("XLSX export failed, falling back to CSV")
			fmt.Fprintf(os.Stderr, "XLSX export unavailable, writing CSV instead\n")
			if path == "" {
				path = export.DefaultCSVFilename
			}
		} else {
			logging.Info().Str("path", xlsxPath).Msg("Wrote XLSX export")
		}
	}

	if path != "" {
		if err := writeCSVFile(path, result); err != nil {
			return err
		}
		logging.Info().Str("path", path).Msg("Wrote CSV export")
	}

	return nil
}

func writeCSVFile(path string, result *reconcile.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()

	return export.WriteCSV(f, result.Columns, result.Rows)
}

func writeXLSXFile(path string, result *reconcile.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() { _ = f.Close() }()

	return export.WriteXLSX(f, result.Columns, result.Rows)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
