package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jonathan/datacard-transformer/internal/config"
	"github.com/jonathan/datacard-transformer/internal/ingest"
	"github.com/jonathan/datacard-transformer/internal/types"
	"github.com/jonathan/datacard-transformer/internal/validation"
	"github.com/spf13/cobra"
)

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "Validate a transformed document against a reference document",
	Long: `Compares a transformed datacard document against a trusted reference and
prints the diagnostic report: pass/fail, itemized mismatches and per-field
coverage ratios. A report is always produced, even on failure.`,
	RunE: runValidateCmd,
}

var (
	validateConfigPath  string
	validateTransformed string
	validateReference   string
	validateReport      string
	validateVerbose     bool
)

func init() {
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	validateCommand.Flags().StringVarP(&validateTransformed, "transformed", "t", "", "Path to the transformed JSON document")
	validateCommand.Flags().StringVarP(&validateReference, "reference", "r", "", "Path to the trusted reference JSON document")
	validateCommand.Flags().StringVar(&validateReport, "report", "", "Path to write the diagnostic report JSON (optional)")
	validateCommand.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print every mismatch, not just essential ones")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd, validateConfigPath, map[string]func(*config.Config){
		"transformed": func(c *config.Config) { c.Output = validateTransformed },
		"reference":   func(c *config.Config) { c.Reference = validateReference },
		"report":      func(c *config.Config) { c.Report = validateReport },
		"verbose":     func(c *config.Config) { c.Verbose = validateVerbose },
	})
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return fmt.Errorf("--transformed is required (flag or config file)")
	}
	if cfg.Reference == "" {
		return fmt.Errorf("--reference is required (flag or config file)")
	}
	return runValidate(cfg)
}

func runValidate(cfg *config.Config) error {
	target, err := ingest.ReadJSON(cfg.Output)
	if err != nil {
		return err
	}
	reference, err := ingest.ReadJSON(cfg.Reference)
	if err != nil {
		return err
	}

	report := validation.Validate(target, reference)
	printReport(report, cfg.Verbose)

	if cfg.Report != "" {
		if err := ingest.WriteJSON(cfg.Report, report); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", cfg.Report)
	}

	if !report.Pass {
		return fmt.Errorf("validation failed: %d essential mismatch(es)", report.EssentialCount())
	}
	return nil
}

func printReport(report *types.Report, verbose bool) {
	if report.Pass {
		fmt.Fprintln(os.Stdout, "PASS")
	} else {
		fmt.Fprintln(os.Stdout, "FAIL")
	}

	for _, m := range report.Mismatches {
		if m.Severity != types.SeverityEssential && !verbose {
			continue
		}
		fmt.Fprintf(os.Stdout, "  [%s] %s at %s", m.Severity, m.Kind, m.Path)
		if m.Expected != nil || m.Actual != nil {
			fmt.Fprintf(os.Stdout, " (expected %v, got %v)", m.Expected, m.Actual)
		}
		fmt.Fprintln(os.Stdout)
	}

	fields := make([]string, 0, len(report.Coverage))
	for field := range report.Coverage {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	fmt.Fprintln(os.Stdout, "Coverage:")
	for _, field := range fields {
		ratio := report.Coverage[field]
		note := ""
		if ratio.KnownGap {
			note = " (known gap)"
		}
		fmt.Fprintf(os.Stdout, "  %-28s %d/%d%s\n", field, ratio.Present, ratio.Expected, note)
	}
}
