// Package cli implements the tyfind command-line interface. Every code query
// goes through the daemon unless --no-daemon selects a one-shot in-process
// analyzer; daemon errors are not retried in-process.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tyfind/tyfind/src/tyfind/internal/workspace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	workspace string
	format    string
	verbose   bool
	noDaemon  bool
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tyfind",
		Short:         "Fast Python code navigation backed by the ty language server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "workspace root (default: auto-detected from the current directory)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", "output format: text or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&opts.noDaemon, "no-daemon", false, "run a one-shot analyzer instead of using the daemon")

	root.AddCommand(
		newHoverCommand(opts),
		newDefinitionCommand(opts),
		newReferencesCommand(opts),
		newSymbolsCommand(opts),
		newOutlineCommand(opts),
		newInspectCommand(opts),
		newPingCommand(opts),
		newDaemonCommand(opts),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// logger builds the CLI-side logger. The daemon configures its own logging
// separately.
func (o *rootOptions) logger() *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if o.verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), level)
	return zap.New(core).Sugar()
}

func (o *rootOptions) formatter() (*Formatter, error) {
	return NewFormatter(o.format)
}

// resolveWorkspace returns the canonical workspace root: the --workspace flag
// when given, otherwise the nearest ancestor of the working directory that
// carries a Python project marker.
func (o *rootOptions) resolveWorkspace() (string, error) {
	if o.workspace != "" {
		return workspace.Canonicalize(o.workspace)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if root, ok := workspace.Detect(cwd); ok {
		return workspace.Canonicalize(root)
	}
	return workspace.Canonicalize(cwd)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
