package codegen

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/ontogen/errors"
	"github.com/teranos/ontogen/logger"
)

// RunHook runs a post-generation command such as "cargo fmt" in dir. The
// command line is split with shell quoting rules but not run through a
// shell. An empty command does nothing.
func RunHook(ctx context.Context, command, dir string) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}

	args, err := shellquote.Split(command)
	if err != nil {
		return errors.WithHint(
			errors.Wrapf(err, "failed to parse post hook %q", command),
			"check the quoting in generate.post_hook")
	}
	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Infow("Running post hook",
		logger.FieldCommand, command,
		logger.FieldDir, dir)
	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(err, "post hook %q failed", command)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.WithDetail(err, msg)
		}
		return err
	}
	return nil
}
