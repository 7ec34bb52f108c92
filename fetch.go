package llmcatalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/kingfs/go-llm-catalog/internal/config"
)

const (
	// DefaultTimeout bounds one `models --json` run.
	DefaultTimeout = 10 * time.Second

	// DefaultInterpreter runs .js tools when no interpreter is configured.
	DefaultInterpreter = "node"

	// logPrefixLimit caps how much unparseable stdout goes into a log line.
	logPrefixLimit = 200
)

// Fetcher runs a CLI tool's `models --json` command and decodes the catalog.
// The zero value is usable and launches real processes for the host OS.
type Fetcher struct {
	Spawner     Spawner
	GOOS        string
	Getenv      func(string) string
	Interpreter string
}

// NewFetcher returns a Fetcher configured from the environment.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Spawner:     NewOSSpawner(),
		GOOS:        runtime.GOOS,
		Getenv:      os.Getenv,
		Interpreter: config.Env().NodePath,
	}
}

// FetchAvailableModels runs `<executablePath> models --json` with a fresh
// environment-configured Fetcher. A timeout <= 0 means DefaultTimeout.
func FetchAvailableModels(ctx context.Context, executablePath string, logger Logger, timeout time.Duration) *ModelsResponse {
	return NewFetcher().Fetch(ctx, executablePath, logger, timeout)
}

// Fetch runs the tool once and returns the validated catalog, or nil after
// logging exactly one diagnostic. It never returns while the child is still
// owned by the call: on timeout or cancellation the child is killed first.
func (f *Fetcher) Fetch(ctx context.Context, executablePath string, logger Logger, timeout time.Duration) *ModelsResponse {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	inv := Classify(executablePath, f.goos(), f.getenv(), f.interpreter())

	// The same budget doubles as the spawn-level deadline.
	spawnCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	result := newLatch[*ModelsResponse]()

	proc, err := f.spawner().Spawn(spawnCtx, inv, &stdout, &stderr)
	if err != nil {
		result.complete(func() *ModelsResponse {
			logger.log(fmt.Sprintf("Failed to run models command %q: %v", inv.Command(), err))
			return nil
		})
		return result.Value()
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	go func() {
		waitErr := proc.Wait()
		result.complete(func() *ModelsResponse {
			// A deadline kill from the spawn context can beat the timer.
			if spawnCtx.Err() != nil {
				logger.log(interruptedMessage(ctx, timeout))
				return nil
			}
			return decodeExit(waitErr, stdout.String(), stderr.String(), logger)
		})
	}()

	select {
	case <-result.Done():
	case <-timer.C:
		result.complete(func() *ModelsResponse {
			_ = proc.Kill()
			logger.log(timeoutMessage(timeout))
			return nil
		})
	case <-ctx.Done():
		result.complete(func() *ModelsResponse {
			_ = proc.Kill()
			logger.log(interruptedMessage(ctx, timeout))
			return nil
		})
	}
	return result.Value()
}

func decodeExit(waitErr error, stdout, stderr string, logger Logger) *ModelsResponse {
	if code := ExitCode(waitErr); code != 0 {
		if stderr == "" {
			stderr = "(no stderr)"
		}
		logger.log(fmt.Sprintf("Models command failed with code %d: %s", code, stderr))
		return nil
	}

	parsed := ParseModelsOutput(stdout)
	if parsed == nil {
		msg := fmt.Sprintf("Failed to parse models output: %s", truncateOutput(stdout, logPrefixLimit))
		if apiErr, ok := ParseModelsError(stdout); ok {
			msg += fmt.Sprintf(" (error code %s: %s)", apiErr.Code, apiErr.Error)
		}
		logger.log(msg)
		return nil
	}
	return parsed
}

func timeoutMessage(timeout time.Duration) string {
	return fmt.Sprintf("Models command timed out after %dms", timeout.Milliseconds())
}

func interruptedMessage(ctx context.Context, timeout time.Duration) string {
	if err := ctx.Err(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("Models command cancelled: %v", err)
	}
	return timeoutMessage(timeout)
}

// truncateOutput keeps at most n runes of s.
func truncateOutput(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (f *Fetcher) spawner() Spawner {
	if f.Spawner == nil {
		return NewOSSpawner()
	}
	return f.Spawner
}

func (f *Fetcher) goos() string {
	if f.GOOS == "" {
		return runtime.GOOS
	}
	return f.GOOS
}

func (f *Fetcher) getenv() func(string) string {
	if f.Getenv == nil {
		return os.Getenv
	}
	return f.Getenv
}

func (f *Fetcher) interpreter() string {
	if f.Interpreter == "" {
		return DefaultInterpreter
	}
	return f.Interpreter
}
