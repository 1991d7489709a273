package cli

import (
	"github.com/mgpai22/srtsh/internal/config"
	"github.com/mgpai22/srtsh/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	hookPath   string
	noColor    bool
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "srtsh [SRT_FILENAME]",
	Short: "Interactive shell for editing SubRip subtitle files",
	Long: `srtsh is an interactive shell for fixing SubRip (.srt) subtitles.

Load a file, inspect and search its entries, shift the timing of everything
from a given entry onward, remove entries and save the result back to disk.
Type "help" inside the shell for the list of commands.

A save hook script runs after every successful save. It is taken from
--hook, the save_hook setting in the config file, or ~/.srt_shell_hook.

Examples:
  srtsh movie.srt
  srtsh --hook ~/bin/sync-subs.sh
  echo "f 1 1500" | srtsh movie.srt`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, found, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		if verbose {
			logger = logging.NewLogger(true)
		} else {
			level, err := logging.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			logger = logging.NewLoggerWithLevel(level)
		}
		logger.Debugw("Configuration loaded", "from_file", found)
		return nil
	},
	RunE: runShell,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default ~/.config/srtsh/config.toml)")
	rootCmd.Flags().
		StringVar(&hookPath, "hook", "", "Script to run after every save")
	rootCmd.Flags().
		BoolVar(&noColor, "no-color", false, "Disable colored output")
}
