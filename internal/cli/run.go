package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml|->",
		Short: "Run a script and print every step",
		Long: `Run a YAML script of array primitives. Use "-" to read the script
from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(rootOpts, args[0], cmd)
		},
	}
}

func runScript(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			_ = formatter.Error(ErrCodeInput, err.Error())
			return WrapExitError(ExitCommandError, "open script", err)
		}
		defer f.Close()
		r = f
	}

	script, err := LoadScript(r)
	if err != nil {
		_ = formatter.Error(ErrCodeScript, err.Error())
		return WrapExitError(ExitCommandError, "load script", err)
	}
	logger.Debug("script loaded",
		zap.String("path", path),
		zap.String("name", script.Name),
		zap.Int("steps", len(script.Steps)))

	res, err := Execute(script, logger)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error())
		return WrapExitError(ExitFailure, "run script", err)
	}
	return formatter.Success(res)
}
