package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/invesalius/launcher/pkg/config"
	"github.com/invesalius/launcher/pkg/exec"
	"github.com/invesalius/launcher/pkg/launch"
	"github.com/invesalius/launcher/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(execute(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the launcher as invoked via executablePath and returns the
// process exit code. Positional arguments are accepted and ignored.
func execute(executablePath string, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	code := launch.ExitOK
	rootCmd := newRootCmd(executablePath, &code)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		output.New(stderr).Fail("invesalius", err)
		return launch.ExitFailure
	}
	return code
}

func newRootCmd(executablePath string, code *int) *cobra.Command {
	return &cobra.Command{
		Use:     "invesalius",
		Short:   "Launch the bundled InVesalius application",
		Long:    "Changes into the bundle's Resources/app directory and runs app.py with the bundled Python interpreter.",
		Version: Version,
		Args:    cobra.ArbitraryArgs,

		// macOS passes -psn_0_NNN when started from Finder.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			policy := launch.ExitPolicyReportSuccess
			if cfg.PropagateExitCode {
				policy = launch.ExitPolicyPropagate
			}

			l := &launch.Launcher{
				Runner:  &exec.RealRunner{Stderr: cmd.ErrOrStderr()},
				Stdout:  cmd.OutOrStdout(),
				Printer: output.New(cmd.ErrOrStderr()),
				Log:     config.NewLogger(cfg, cmd.ErrOrStderr()),
				Policy:  policy,
			}
			*code = l.Run(executablePath)
			return nil
		},
	}
}
