package cli

import (
	"github.com/mgpai22/srtsh/internal/shell"
	"github.com/spf13/cobra"
)

func runShell(cmd *cobra.Command, args []string) error {
	hook, err := cfg.ResolveSaveHook(hookPath)
	if err != nil {
		return err
	}

	session := shell.New(shell.Options{
		SaveHook:   hook,
		Logger:     logger,
		TableStyle: cfg.Display.TableStyle,
	})
	logger.Debugw("Starting shell", "save_hook", hook)

	colorMode := cfg.Display.Color
	if noColor {
		colorMode = "never"
	}

	repl, err := newREPL(session, cmd.InOrStdin(), cmd.OutOrStdout(), replOptions{
		Prompt:    cfg.Display.Prompt,
		ColorMode: colorMode,
	})
	if err != nil {
		return err
	}
	defer repl.Close()

	if len(args) == 1 {
		if err := session.Load(args[0]); err != nil {
			repl.print(shell.Result{Output: err.Error(), Failed: true})
		}
	}

	return repl.Run(cmd.Context())
}
