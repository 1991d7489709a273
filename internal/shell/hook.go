package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/mgpai22/srtsh/internal/logging"
)

// runHook runs the save hook through sh and returns its trimmed stdout.
// A failing hook is logged and otherwise treated like a silent one.
func runHook(ctx context.Context, hook string, logger *logging.Logger) string {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, "sh", hook)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Warnw("Save hook failed",
			"hook", hook,
			"error", err,
			"stderr", strings.TrimSpace(stderr.String()),
		)
	} else {
		logger.Debugw("Save hook finished", "hook", hook)
	}

	return strings.TrimRight(stdout.String(), "\r\n")
}
