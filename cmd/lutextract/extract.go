package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/liozur/lutextract/internal/config"
	"github.com/liozur/lutextract/internal/database"
	"github.com/liozur/lutextract/internal/lute"
)

func newExtractCommand() *cobra.Command {
	var dbPath string
	var parentsOnly bool
	var allowEmptyTranslation bool
	var includeWellKnown bool
	var cutoff string
	var output string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract filtered terms and their languages from a lute.db file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := dbPath
			if path == "" {
				path = cfg.Lute.DatabasePath
			}
			if path == "" {
				return fmt.Errorf("no lute database path: pass --db or set lute.database_path in the config")
			}

			opts, err := resolveFilterOptions(cfg.Extract, cmd.Flags(), filterFlags{
				parentsOnly:           parentsOnly,
				allowEmptyTranslation: allowEmptyTranslation,
				includeWellKnown:      includeWellKnown,
				cutoff:                cutoff,
			})
			if err != nil {
				return err
			}

			extractor := lute.NewExtractor(database.Open, newCLIReporter())
			result, err := extractor.Extract(ctx, path, opts)
			if err != nil {
				// The reporter already surfaced the failure to the user.
				var validationErr *lute.ValidationError
				if errors.As(err, &validationErr) {
					return fmt.Errorf("invalid lute database path: %w", err)
				}
				return fmt.Errorf("extract terms: %w", err)
			}

			color.Green("Extracted %d terms across %d languages", len(result.Terms), len(result.Languages))
			for _, lang := range result.Languages {
				fmt.Printf("  %s (language ID %d)\n", lang.Name, lang.ID)
			}

			if output != "" {
				if err := writeResult(output, result); err != nil {
					return fmt.Errorf("write extracted terms: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the lute.db file")
	cmd.Flags().BoolVar(&parentsOnly, "parents-only", false, "Restrict extraction to parent terms")
	cmd.Flags().BoolVar(&allowEmptyTranslation, "allow-empty-translation", false, "Keep terms whose translation is empty")
	cmd.Flags().BoolVar(&includeWellKnown, "include-well-known", false, "Keep terms marked as well known")
	cmd.Flags().StringVar(&cutoff, "cutoff", "", "Exclude terms created before this date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&output, "output", "", "Write extracted terms as TSV to this file, or - for stdout")
	return cmd
}

// filterFlags carries the extract command's flag values so the config
// defaults are only overridden by flags the user actually set.
type filterFlags struct {
	parentsOnly           bool
	allowEmptyTranslation bool
	includeWellKnown      bool
	cutoff                string
}

func resolveFilterOptions(cfg config.ExtractConfig, flags *pflag.FlagSet, f filterFlags) (lute.FilterOptions, error) {
	opts := lute.FilterOptions{
		ParentsOnly:           cfg.ParentsOnly,
		AllowEmptyTranslation: cfg.AllowEmptyTranslation,
		IncludeWellKnown:      cfg.IncludeWellKnown,
	}
	if flags.Changed("parents-only") {
		opts.ParentsOnly = f.parentsOnly
	}
	if flags.Changed("allow-empty-translation") {
		opts.AllowEmptyTranslation = f.allowEmptyTranslation
	}
	if flags.Changed("include-well-known") {
		opts.IncludeWellKnown = f.includeWellKnown
	}

	cutoff := cfg.CutoffDate
	if flags.Changed("cutoff") {
		cutoff = f.cutoff
	}
	if cutoff != "" {
		parsed, err := time.Parse("2006-01-02", cutoff)
		if err != nil {
			return lute.FilterOptions{}, fmt.Errorf("parse cutoff date %q: %w", cutoff, err)
		}
		opts.Cutoff = parsed
	}

	return opts, nil
}

// cliReporter logs extraction progress and prints user-facing notices in
// color, the way failures were shown to the user before extraction moved to
// the terminal.
type cliReporter struct {
	*lute.SlogReporter
}

func newCLIReporter() cliReporter {
	return cliReporter{SlogReporter: lute.NewSlogReporter(slog.Default())}
}

func (r cliReporter) Notify(message string) {
	color.Yellow(message)
}

func writeResult(output string, result lute.Result) error {
	var w io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}
	return writeTSV(w, result)
}

// writeTSV hands the extracted rows to the downstream consumer as
// tab-separated values, one row per term in the fixed field order.
func writeTSV(w io.Writer, result lute.Result) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	for _, term := range result.Terms {
		record := []string{
			term.Text,
			term.Translation,
			strconv.FormatInt(term.LanguageID, 10),
			term.Created.Format("2006-01-02 15:04:05"),
			term.Tag.String,
			term.StatusChanged.Format("2006-01-02 15:04:05"),
			term.TextLC,
			strconv.FormatInt(term.ID, 10),
			strconv.Itoa(term.Status),
			term.Romanization.String,
			strconv.Itoa(term.TokenCount),
			term.ImageSource.String,
			term.TagComment.String,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write term row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush term rows: %w", err)
	}
	return nil
}
