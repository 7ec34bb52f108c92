package llmcatalog

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"
)

// Spawner starts processes. Inject a fake in tests instead of launching
// real binaries.
type Spawner interface {
	// Spawn starts inv with stdin closed, copying output into stdout and
	// stderr as it arrives. The process is killed if ctx is done.
	Spawn(ctx context.Context, inv Invocation, stdout, stderr io.Writer) (Process, error)
}

// Process is a started child process.
type Process interface {
	// Wait blocks until the process exits and its output is drained.
	Wait() error
	// Kill forcibly terminates the process.
	Kill() error
}

// OSSpawner implements Spawner using os/exec.
type OSSpawner struct {
	// Env overrides environment variables (nil = inherit from parent)
	Env []string

	// WaitDelay bounds how long Wait keeps draining pipes after the process
	// is killed, e.g. when a grandchild of cmd.exe still holds them.
	WaitDelay time.Duration
}

// NewOSSpawner creates a new OS-based spawner.
func NewOSSpawner() *OSSpawner {
	return &OSSpawner{WaitDelay: 2 * time.Second}
}

// Spawn starts the command. Stdin is left nil, which os/exec connects to the
// null device.
func (s *OSSpawner) Spawn(ctx context.Context, inv Invocation, stdout, stderr io.Writer) (Process, error) {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	if s.Env != nil {
		cmd.Env = s.Env
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = s.WaitDelay
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &osProcess{cmd: cmd}, nil
}

type osProcess struct {
	cmd *exec.Cmd
}

func (p *osProcess) Wait() error { return p.cmd.Wait() }

func (p *osProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// ExitCode maps a Wait error to a process exit code: 0 for nil, the
// reported status for an exit error, -1 otherwise (killed by a signal,
// pipe failure).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}
