// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package forge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/moneyprinter/protocol-deploy/pkg/constants"
	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/moneyprinter/protocol-deploy/pkg/utils"
	"go.uber.org/zap"
)

// ToolError is returned when the tool ran but exited non-zero.
// errors.Is(err, constants.ErrExternalToolFailure) holds for it.
type ToolError struct {
	Program  string
	Args     []string // redacted
	ExitCode int
	Output   string
}

func (e *ToolError) Error() string {
	msg := e.Summary()
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

// Summary is the error message without the captured output
func (e *ToolError) Summary() string {
	return fmt.Sprintf("%s: %s exited with code %d", constants.ErrExternalToolFailure, e.Program, e.ExitCode)
}

func (*ToolError) Unwrap() error {
	return constants.ErrExternalToolFailure
}

// Runner spawns the deployment tool. Output is streamed to out while it is captured.
type Runner struct {
	log *zap.Logger
	out io.Writer
}

func NewRunner(log *zap.Logger, out io.Writer) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{log: log, out: out}
}

// ResolvePath finds the forge binary. configured may be a name on PATH or a path;
// empty means the default name.
func ResolvePath(configured string) (string, error) {
	name := configured
	if name == "" {
		name = constants.DefaultForgeName
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w (looked for %q: %s)", constants.ErrToolNotFound, name, err)
	}
	return path, nil
}

// Run executes inv and waits for it. The child gets the parent environment
// overlaid with inv.Env; the parent's own environment is left untouched.
func (r *Runner) Run(ctx context.Context, inv *models.Invocation) (*models.InvocationResult, error) {
	shown := utils.RedactArgs(inv.Args, inv.Secrets...)
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...) //nolint:gosec // G204: Running forge with arguments built from deploy config
	cmd.Dir = inv.Dir
	cmd.Env = utils.MergeEnv(os.Environ(), inv.Env)
	setProcessGroup(cmd)
	// output pipes held by grandchildren must not keep Run blocked after cancellation
	cmd.WaitDelay = constants.ForgeWaitDelay

	var captured bytes.Buffer
	w := io.MultiWriter(r.out, &captured)
	cmd.Stdout = w
	cmd.Stderr = w

	r.log.Info("running deployment tool",
		zap.String("program", inv.Program),
		zap.String("args", strings.Join(shown, " ")),
		zap.Strings("env", inv.EnvKeys()),
		zap.String("dir", inv.Dir),
	)
	start := time.Now()
	err := cmd.Run()
	result := &models.InvocationResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Output:   captured.String(),
		Elapsed:  time.Since(start),
	}
	if err == nil {
		r.log.Info("deployment tool finished", zap.Duration("elapsed", result.Elapsed))
		return result, nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		r.log.Error("deployment tool failed",
			zap.Int("exitCode", result.ExitCode),
			zap.Duration("elapsed", result.Elapsed),
		)
		return result, &ToolError{
			Program:  inv.Program,
			Args:     shown,
			ExitCode: result.ExitCode,
			Output:   result.Output,
		}
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return result, fmt.Errorf("%w (%s)", constants.ErrToolNotFound, err)
	default:
		return result, fmt.Errorf("could not run %s: %w", inv.Program, err)
	}
}
