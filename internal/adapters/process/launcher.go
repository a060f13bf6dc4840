// Package process spawns the game and its pre-launch commands.
package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/ports"
	"go.uber.org/zap"
)

type Launcher struct {
	stdout io.Writer
	stderr io.Writer
}

var _ ports.ProcessLauncher = (*Launcher)(nil)

func NewLauncher() *Launcher {
	return &Launcher{stdout: os.Stdout, stderr: os.Stderr}
}

// WithOutput redirects game and pre-launch output, mainly for tests.
func (l *Launcher) WithOutput(stdout, stderr io.Writer) *Launcher {
	l.stdout = stdout
	l.stderr = stderr
	return l
}

// Launch runs the pre-launch commands in order, then starts the game and
// returns its pid without waiting for it to exit.
func (l *Launcher) Launch(ctx context.Context, spec domain.ProcessSpec) (int, error) {
	logger := logging.FromContext(ctx)

	for _, command := range spec.PreLaunch {
		logger.Debug("running pre-launch command", zap.String("command", command))
		cmd := shellCommand(ctx, command)
		cmd.Dir = spec.Dir
		cmd.Stdout = l.stdout
		cmd.Stderr = l.stderr
		if err := cmd.Run(); err != nil {
			return 0, domain.Wrap(domain.CategoryLaunch, fmt.Errorf("pre-launch command %q: %w", command, err))
		}
	}

	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	if spec.ShowOutput {
		cmd.Stdout = l.stdout
		cmd.Stderr = l.stderr
	}

	logger.Debug("spawning game", zap.String("path", spec.Path), zap.Strings("args", spec.Args), zap.String("dir", spec.Dir))
	if err := cmd.Start(); err != nil {
		return 0, domain.Wrap(domain.CategoryLaunch, fmt.Errorf("start %s: %w", spec.Path, err))
	}

	pid := cmd.Process.Pid
	if spec.ShowOutput {
		go func() { _ = cmd.Wait() }()
		return pid, nil
	}
	if err := cmd.Process.Release(); err != nil {
		return pid, domain.Wrap(domain.CategoryLaunch, fmt.Errorf("release game process: %w", err))
	}
	return pid, nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", command)
	}
	return exec.CommandContext(ctx, "sh", "-c", command)
}
