// Package launch resolves the application bundle layout and runs its entry script.
package launch

import (
	"errors"
	"path/filepath"
)

// Bundle layout relative to the launcher executable.
const (
	ResourcesSuffix = "/../Resources/app/"
	InterpreterPath = "../libs/bin/python3" // relative to the resources directory
	ScriptName      = "app.py"
)

// ErrNoExecutablePath is returned when the invocation path is empty.
var ErrNoExecutablePath = errors.New("empty executable path")

// ResourcesDir returns the working directory for the entry script:
// the directory of executablePath followed by ResourcesSuffix.
// The result is not cleaned, so it is exactly dirname(P) + ResourcesSuffix.
func ResourcesDir(executablePath string) (string, error) {
	if executablePath == "" {
		return "", ErrNoExecutablePath
	}
	return filepath.Dir(executablePath) + ResourcesSuffix, nil
}

// Command is the interpreter invocation run inside the resources directory.
type Command struct {
	Interpreter string
	Script      string
}

// DefaultCommand returns the bundled interpreter running the entry script.
func DefaultCommand() Command {
	return Command{Interpreter: InterpreterPath, Script: ScriptName}
}

// Args returns the arguments passed to the interpreter.
func (c Command) Args() []string {
	return []string{c.Script}
}

func (c Command) String() string {
	return c.Interpreter + " " + c.Script
}
