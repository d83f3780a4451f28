package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/marc-alexis-com/Markdown-link-analyser/internal"
	pkgconfig "github.com/marc-alexis-com/Markdown-link-analyser/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// applyFlags overlays command-line values onto cfg. Flags set on the command
// line always win over config-file values.
func applyFlags(cmd *cli.Command, cfg *internal.Config) {
	if cmd.IsSet("input") {
		cfg.Vault.Path = cmd.String("input")
	}
	if cmd.IsSet("output-csv") {
		cfg.Export.CSVPath = cmd.String("output-csv")
	}
	if cmd.IsSet("ignore-tags") {
		cfg.Filter.IgnoreTags = cmd.StringSlice("ignore-tags")
	}
	if cmd.IsSet("select-tags") {
		cfg.Filter.SelectTags = cmd.StringSlice("select-tags")
	}
	if cmd.IsSet("top") {
		cfg.Selection.Top = int(cmd.Int("top"))
	}
	if cmd.IsSet("top-percent") {
		cfg.Selection.TopPercent = cmd.Float("top-percent")
	}
	if cmd.IsSet("max-size") {
		cfg.Selection.MaxSizeMB = cmd.Float("max-size")
	}
	if cmd.IsSet("dest") {
		cfg.Export.Dest = cmd.String("dest")
	}
	if cmd.IsSet("combine") {
		cfg.Export.CombinePath = cmd.String("combine")
	}
	if cmd.IsSet("verbose") {
		cfg.App.Verbose = cmd.Bool("verbose")
	}
	if cmd.IsSet("no-csv") {
		cfg.Export.NoCSV = cmd.Bool("no-csv")
	}
	if cmd.IsSet("dry-run") {
		cfg.Export.DryRun = cmd.Bool("dry-run")
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "mdlinks",
		Usage:  "Analyse wikilink connectivity between the Markdown notes of a vault and export the most linked ones",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to optional YAML config file",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to the directory containing .md files",
				Sources: cli.EnvVars("MDLINKS_INPUT_DIR"),
			},
			&cli.StringFlag{
				Name:    "output-csv",
				Aliases: []string{"o"},
				Usage:   "Path to the output CSV file",
			},
			&cli.StringSliceFlag{
				Name:  "ignore-tags",
				Usage: "Tags to ignore (a note carrying any of these is excluded)",
			},
			&cli.StringSliceFlag{
				Name:  "select-tags",
				Usage: "Tags to select (a note must carry all of these to be included)",
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Select the top N most linked notes",
			},
			&cli.FloatFlag{
				Name:  "top-percent",
				Usage: "Select the top P percent of the most linked notes",
			},
			&cli.FloatFlag{
				Name:  "max-size",
				Usage: "Select notes in descending order until reaching this total size in MB",
			},
			&cli.StringFlag{
				Name:  "dest",
				Usage: "Destination directory for copying the selected notes",
			},
			&cli.StringFlag{
				Name:  "combine",
				Usage: "Combine the selected notes into one .md file, separated by blank lines",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Increase output verbosity",
			},
			&cli.BoolFlag{
				Name:  "no-csv",
				Usage: "Do not generate CSV output",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Compute and report the selection without writing CSV, copying, or combining",
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
