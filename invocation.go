package llmcatalog

import (
	"path/filepath"
	"strings"
)

// Strategy is how an executable path gets launched.
type Strategy int

const (
	// StrategyDirect runs the path itself.
	StrategyDirect Strategy = iota
	// StrategyShell runs a batch file through the Windows command interpreter.
	StrategyShell
	// StrategyInterpreter runs a script through a JavaScript runtime.
	StrategyInterpreter
)

func (s Strategy) String() string {
	switch s {
	case StrategyShell:
		return "shell"
	case StrategyInterpreter:
		return "interpreter"
	default:
		return "direct"
	}
}

// DefaultComSpec is used when the ComSpec variable is unset.
const DefaultComSpec = "cmd.exe"

// modelsArgs is the fixed command line asking the tool for its catalog.
var modelsArgs = []string{"models", "--json"}

// Invocation is a fully resolved argv for one spawn.
type Invocation struct {
	Strategy Strategy
	Name     string
	Args     []string
}

// Command renders the invocation for log lines.
func (i Invocation) Command() string {
	return strings.Join(append([]string{i.Name}, i.Args...), " ")
}

// Classify picks the argv for launching executablePath on goos. getenv is
// consulted for ComSpec only; interpreter runs .js tools.
func Classify(executablePath, goos string, getenv func(string) string, interpreter string) Invocation {
	ext := strings.ToLower(filepath.Ext(executablePath))

	switch {
	case goos == "windows" && (ext == ".cmd" || ext == ".bat"):
		shell := ""
		if getenv != nil {
			shell = getenv("ComSpec")
		}
		if shell == "" {
			shell = DefaultComSpec
		}
		args := append([]string{"/d", "/s", "/c", executablePath}, modelsArgs...)
		return Invocation{Strategy: StrategyShell, Name: shell, Args: args}

	case ext == ".js":
		args := append([]string{executablePath}, modelsArgs...)
		return Invocation{Strategy: StrategyInterpreter, Name: interpreter, Args: args}

	default:
		return Invocation{Strategy: StrategyDirect, Name: executablePath, Args: append([]string(nil), modelsArgs...)}
	}
}
