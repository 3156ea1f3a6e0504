package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/config"
	"github.com/temps-cli/temps/internal/util"
)

var (
	// Global flags
	configPath     string
	trackingFile   string
	midnightOffset string
	timezone       string
	debug          bool

	// Settings resolved from defaults, config file, environment and
	// flags, in that order. Filled in by the persistent pre-run.
	opts struct {
		path   string
		offset time.Duration
		loc    *time.Location
		editor string
	}

	rootCmd = &cobra.Command{
		Use:   "temps",
		Short: "Simple time tracker",
		Long: `temps records start/stop intervals tagged with a project name in a
tab-separated log file and reports on them.

Running temps without a subcommand prints today's summary.

Examples:
  temps start website            # start tracking 'website'
  temps start                    # start tracking the last project again
  temps stop --at 17:30          # close the ongoing entry at 17:30
  temps summary --weekly         # hours per project for the past week
  temps viz yesterday            # block timeline of yesterday`,
		SilenceUsage:      true,
		PersistentPreRunE: resolveOptions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummaryMode(cmd, modeDaily, "table")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.config/temps/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&trackingFile, "file", "~/temps.tsv",
		"Path for the tracking data")
	rootCmd.PersistentFlags().StringVar(&midnightOffset, "midnight-offset", "00:00",
		"Time at which we consider the current day to have ended")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Europe/Paris, UTC)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")
}

// resolveOptions layers flag values over the loaded configuration and
// parses them into their runtime types.
func resolveOptions(cmd *cobra.Command, args []string) error {
	util.InitLogger(debug)

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("file") || cfg.File == "" {
		cfg.File = trackingFile
	}
	if flags.Changed("midnight-offset") || cfg.MidnightOffset == "" {
		cfg.MidnightOffset = midnightOffset
	}
	if flags.Changed("timezone") || cfg.Timezone == "" {
		cfg.Timezone = timezone
	}

	opts.path = expandPath(cfg.File)
	opts.editor = cfg.Editor

	opts.offset, err = util.ParseClock(cfg.MidnightOffset)
	if err != nil {
		return fmt.Errorf("invalid midnight offset: %w", err)
	}

	opts.loc = time.Local
	if cfg.Timezone != "" && cfg.Timezone != "Local" {
		opts.loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	return nil
}

func clockNow() time.Time {
	return time.Now().In(opts.loc)
}

func Execute() error {
	return rootCmd.Execute()
}

func expandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
