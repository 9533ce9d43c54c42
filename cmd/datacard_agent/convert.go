package main

import (
	"context"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jonathan/datacard-transformer/internal/ingest"
	"github.com/spf13/cobra"
)

var convertCommand = &cobra.Command{
	Use:   "convert",
	Short: "Convert raw catalogue markup into generic JSON trees",
	Long: `Converts BattleScribe .cat/.gst files into the namespace-free generic JSON
form consumed by the transform command. With a directory as input, every
catalogue file in it is converted concurrently.`,
	RunE: runConvertCmd,
}

var (
	convertInput   string
	convertOutput  string
	convertVerbose bool
)

func init() {
	convertCommand.Flags().StringVarP(&convertInput, "input", "i", "", "Catalogue file or directory of .cat/.gst files")
	convertCommand.Flags().StringVarP(&convertOutput, "output", "o", "", "Output JSON file, or directory when input is a directory")
	convertCommand.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "Dump the top-level structure of each parsed tree")

	_ = convertCommand.MarkFlagRequired("input")
	_ = convertCommand.MarkFlagRequired("output")

	rootCmd.AddCommand(convertCommand)
}

func runConvertCmd(_ *cobra.Command, _ []string) error {
	info, err := os.Stat(convertInput)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if info.IsDir() {
		written, err := ingest.ConvertDir(context.Background(), convertInput, convertOutput)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintf(os.Stdout, "Converted %s\n", path)
		}
		return nil
	}

	parsed, err := ingest.ParseFile(convertInput)
	if err != nil {
		return err
	}
	if convertVerbose {
		fmt.Fprintf(os.Stdout, "Parsed %s:\n%s", convertInput, spew.Sdump(treeSummary(parsed)))
	}
	if err := ingest.WriteJSON(convertOutput, parsed); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Converted %s\n", convertOutput)
	return nil
}

// treeSummary maps each top-level key of a parsed tree to a short shape
// description, keeping verbose output readable for large catalogues.
func treeSummary(parsed map[string]any) map[string]string {
	summary := make(map[string]string, len(parsed))
	for key, value := range parsed {
		switch v := value.(type) {
		case map[string]any:
			summary[key] = fmt.Sprintf("object(%d keys)", len(v))
		case []any:
			summary[key] = fmt.Sprintf("array(%d items)", len(v))
		case string:
			summary[key] = "string"
		default:
			summary[key] = fmt.Sprintf("%T", v)
		}
	}
	return summary
}
