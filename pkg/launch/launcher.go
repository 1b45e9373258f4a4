package launch

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/invesalius/launcher/pkg/exec"
	"github.com/invesalius/launcher/pkg/output"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitPolicy decides the launcher's exit code once the child has finished.
type ExitPolicy int

const (
	// ExitPolicyReportSuccess exits 0 whatever the child's status.
	ExitPolicyReportSuccess ExitPolicy = iota
	// ExitPolicyPropagate exits with the child's own exit code.
	ExitPolicyPropagate
)

// Launcher enters the bundle's resources directory and runs the entry script.
// Zero-value fields fall back to the real process environment.
type Launcher struct {
	Runner  exec.Runner
	Chdir   func(dir string) error
	Stdout  io.Writer
	Printer *output.Printer
	Log     logrus.FieldLogger
	Policy  ExitPolicy
	Command Command
}

// Launch resolves the resources directory from executablePath, changes into it
// and runs the interpreter, relaying its stdout. The returned error is
// ErrNoExecutablePath, an *EnvironmentError or a *LaunchError; the child's own
// failures are reported in the Result.
func (l *Launcher) Launch(executablePath string) (exec.Result, error) {
	dir, err := ResourcesDir(executablePath)
	if err != nil {
		return exec.Result{}, err
	}

	chdir := l.Chdir
	if chdir == nil {
		chdir = os.Chdir
	}
	if err := chdir(dir); err != nil {
		return exec.Result{}, &EnvironmentError{Dir: dir, Err: err}
	}
	l.log().Debugf("Inside: %s", dir)

	cmd := l.Command
	if cmd == (Command{}) {
		cmd = DefaultCommand()
	}
	l.log().Debugf("Running: %s", cmd)

	runner := l.Runner
	if runner == nil {
		runner = &exec.RealRunner{}
	}
	stdout := l.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	res, err := runner.Run(cmd.Interpreter, cmd.Args(), stdout)
	if err != nil {
		return exec.Result{}, &LaunchError{Command: cmd, Err: err}
	}
	l.log().WithField("exit_code", res.ExitCode).Debug("Interpreter exited")
	return res, nil
}

// Run launches the entry script and returns the launcher's exit code.
// Every failure prints exactly one diagnostic.
func (l *Launcher) Run(executablePath string) int {
	res, err := l.Launch(executablePath)
	if err != nil {
		l.printer().Fail(diagnostic(err), err)
		return ExitFailure
	}
	if !res.OK() {
		l.printer().Fail(output.MsgCouldNotRun, res.Err)
	}
	return ExitCode(l.Policy, res)
}

// ExitCode maps a finished child to the launcher's exit code.
func ExitCode(policy ExitPolicy, res exec.Result) int {
	if policy != ExitPolicyPropagate || res.OK() {
		return ExitOK
	}
	if res.ExitCode <= 0 {
		return ExitFailure
	}
	return res.ExitCode
}

func diagnostic(err error) string {
	var envErr *EnvironmentError
	switch {
	case errors.Is(err, ErrNoExecutablePath):
		return output.MsgNoExecutablePath
	case errors.As(err, &envErr):
		return output.MsgNoResourcesDir
	default:
		return output.MsgCouldNotRun
	}
}

func (l *Launcher) printer() *output.Printer {
	if l.Printer == nil {
		return output.Stderr()
	}
	return l.Printer
}

func (l *Launcher) log() logrus.FieldLogger {
	if l.Log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		return discard
	}
	return l.Log
}
