package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/datacard-transformer/internal/config"
	"github.com/jonathan/datacard-transformer/internal/extract"
	"github.com/jonathan/datacard-transformer/internal/ingest"
	"github.com/jonathan/datacard-transformer/internal/schemas"
	"github.com/jonathan/datacard-transformer/internal/transform"
	"github.com/spf13/cobra"
)

var transformCommand = &cobra.Command{
	Use:   "transform",
	Short: "Transform a source catalogue into a datacard document",
	Long: `Transforms a BattleScribe catalogue (raw .cat/.gst markup or its converted
JSON form) into the compact datacard document and writes it to the output path.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runTransformCmd,
}

var (
	transformConfigPath string
	transformSource     string
	transformReference  string
	transformOutput     string
	transformSchema     string
	transformGameSystem string
	transformVerbose    bool
)

func init() {
	// Config file flag (processed first)
	transformCommand.Flags().StringVar(&transformConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	transformCommand.Flags().StringVarP(&transformSource, "source", "s", "", "Path to the source catalogue (.cat/.gst or converted JSON)")
	transformCommand.Flags().StringVarP(&transformReference, "reference", "r", "", "Path to the trusted reference JSON document (optional, supplies display fields)")
	transformCommand.Flags().StringVarP(&transformOutput, "output", "o", "", "Path to write the transformed JSON document")
	transformCommand.Flags().StringVar(&transformSchema, "schema", "", "JSON Schema to check the output against (optional)")
	transformCommand.Flags().StringVar(&transformGameSystem, "game-system", "", "Converted game-system JSON supplying shared rule names (optional)")
	transformCommand.Flags().BoolVarP(&transformVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(transformCommand)
}

func runTransformCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(cmd, transformConfigPath, map[string]func(*config.Config){
		"source":      func(c *config.Config) { c.Source = transformSource },
		"reference":   func(c *config.Config) { c.Reference = transformReference },
		"output":      func(c *config.Config) { c.Output = transformOutput },
		"schema":      func(c *config.Config) { c.Schema = transformSchema },
		"game-system": func(c *config.Config) { c.GameSystem = transformGameSystem },
		"verbose":     func(c *config.Config) { c.Verbose = transformVerbose },
	})
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		return fmt.Errorf("--source is required (flag or config file)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--output is required (flag or config file)")
	}
	return runTransform(cfg)
}

func runTransform(cfg *config.Config) error {
	source, err := loadSourceTree(cfg.Source)
	if err != nil {
		return err
	}

	opts := transform.Options{}
	if cfg.Reference != "" {
		reference, err := ingest.ReadJSON(cfg.Reference)
		if err != nil {
			return err
		}
		opts.Reference = reference
	}
	if cfg.GameSystem != "" {
		gameSystem, err := ingest.ReadJSON(cfg.GameSystem)
		if err != nil {
			return err
		}
		markers := extract.LoadCoreMarkers(gameSystem)
		opts.Classifier = extract.NewClassifier(markers, nil)
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "Loaded %d shared rule markers\n", len(markers))
		}
	}

	doc, err := transform.Transform(source, opts)
	if err != nil {
		return fmt.Errorf("transformation of %s failed: %w", cfg.Source, err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := ingest.WriteJSON(cfg.Output, doc); err != nil {
		return err
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stdout, "Transformed %q: %d datasheets, %d rule groups -> %s\n",
			doc.Name, len(doc.Datasheets), len(doc.Rules["army"]), cfg.Output)
	}

	if cfg.Schema != "" {
		if err := schemas.ValidateJSON(cfg.Schema, cfg.Output); err != nil {
			return fmt.Errorf("output does not satisfy the wire contract: %w", err)
		}
		if cfg.Verbose {
			fmt.Fprintln(os.Stdout, "Output satisfies the wire-contract schema")
		}
	}
	return nil
}

// loadSourceTree reads the source document, converting raw catalogue
// markup on the fly when the path has a BattleScribe extension.
func loadSourceTree(path string) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cat", ".gst":
		return ingest.ParseFile(path)
	default:
		return ingest.ReadJSON(path)
	}
}

// mergedConfig loads the optional config file and applies CLI overrides
// for every flag that was explicitly set.
func mergedConfig(cmd *cobra.Command, configPath string, overrides map[string]func(*config.Config)) (*config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	for flag, apply := range overrides {
		if cmd.Flags().Changed(flag) {
			apply(&cfg)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
