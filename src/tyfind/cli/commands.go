package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tyfind/tyfind/src/tyfind/client"
	"github.com/tyfind/tyfind/src/tyfind/mapper"
	"github.com/tyfind/tyfind/src/tyfind/model"
)

// positionArgs parses the FILE LINE COLUMN triple common to position
// commands. Line and column are one-based on the command line.
func positionArgs(args []string) (string, uint32, uint32, error) {
	line, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid line %q: %w", args[1], err)
	}
	column, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return "", 0, 0, fmt.Errorf("invalid column %q: %w", args[2], err)
	}
	return args[0], uint32(line), uint32(column), nil
}

func newHoverCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hover FILE LINE COLUMN",
		Short: "Show type information and documentation at a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, line, column, err := positionArgs(args)
			if err != nil {
				return err
			}
			ws, formatter, err := commandSetup(opts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			r, err := newRunner(ctx, opts, ws)
			if err != nil {
				return err
			}
			defer r.Close()

			line0, column0 := mapper.ToZeroBased(line, column)
			result, err := r.Hover(ctx, &model.HoverParams{Workspace: ws, File: file, Line: line0, Column: column0})
			if err != nil {
				return err
			}

			fmt.Println(formatter.Hover(result.Hover, queryInfo(file, line, column)))
			return nil
		},
	}
}

func newDefinitionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "definition FILE LINE COLUMN",
		Aliases: []string{"def"},
		Short:   "Jump to the definition of the symbol at a position",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, line, column, err := positionArgs(args)
			if err != nil {
				return err
			}
			ws, formatter, err := commandSetup(opts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			r, err := newRunner(ctx, opts, ws)
			if err != nil {
				return err
			}
			defer r.Close()

			line0, column0 := mapper.ToZeroBased(line, column)
			result, err := r.Definition(ctx, &model.DefinitionParams{Workspace: ws, File: file, Line: line0, Column: column0})
			if err != nil {
				return err
			}

			fmt.Println(formatter.Locations("Definition", result.Locations, queryInfo(file, line, column)))
			return nil
		},
	}
}

func newReferencesCommand(opts *rootOptions) *cobra.Command {
	var includeDeclaration bool

	cmd := &cobra.Command{
		Use:     "references FILE LINE COLUMN",
		Aliases: []string{"refs"},
		Short:   "List all references to the symbol at a position",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, line, column, err := positionArgs(args)
			if err != nil {
				return err
			}
			ws, formatter, err := commandSetup(opts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			r, err := newRunner(ctx, opts, ws)
			if err != nil {
				return err
			}
			defer r.Close()

			line0, column0 := mapper.ToZeroBased(line, column)
			result, err := r.References(ctx, &model.ReferencesParams{
				PositionParams:     model.PositionParams{Workspace: ws, File: file, Line: line0, Column: column0},
				IncludeDeclaration: includeDeclaration,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.Locations("References", result.Locations, queryInfo(file, line, column)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeDeclaration, "include-declaration", false, "include the declaration in the results")
	return cmd
}

func newSymbolsCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "symbols QUERY",
		Short: "Search for symbols across the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, formatter, err := commandSetup(opts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			r, err := newRunner(ctx, opts, ws)
			if err != nil {
				return err
			}
			defer r.Close()

			result, err := r.WorkspaceSymbols(ctx, &model.WorkspaceSymbolsParams{Workspace: ws, Query: args[0], Limit: limit})
			if err != nil {
				return err
			}

			fmt.Println(formatter.Symbols(result.Symbols, args[0]))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results (0 = unlimited)")
	return cmd
}

func newOutlineCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "outline FILE",
		Short: "Show the symbol outline of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, formatter, err := commandSetup(opts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			r, err := newRunner(ctx, opts, ws)
			if err != nil {
				return err
			}
			defer r.Close()

			result, err := r.DocumentSymbols(ctx, &model.DocumentSymbolsParams{Workspace: ws, File: args[0]})
			if err != nil {
				return err
			}

			fmt.Println(formatter.Outline(result.Symbols, args[0]))
			return nil
		},
	}
}

func newInspectCommand(opts *rootOptions) *cobra.Command {
	var includeReferences bool

	cmd := &cobra.Command{
		Use:   "inspect FILE LINE COLUMN",
		Short: "Show hover information and optionally references in one call",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, line, column, err := positionArgs(args)
			if err != nil {
				return err
			}
			ws, formatter, err := commandSetup(opts)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			r, err := newRunner(ctx, opts, ws)
			if err != nil {
				return err
			}
			defer r.Close()

			line0, column0 := mapper.ToZeroBased(line, column)
			result, err := r.Inspect(ctx, &model.InspectParams{
				PositionParams:    model.PositionParams{Workspace: ws, File: file, Line: line0, Column: column0},
				IncludeReferences: includeReferences,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.Inspect(result, queryInfo(file, line, column)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&includeReferences, "references", false, "also list references (slower on large workspaces)")
	return cmd
}

func newPingCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check daemon health, starting it if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			c, err := client.EnsureRunning(ctx, opts.logger())
			if err != nil {
				return err
			}
			defer c.Close()

			result, err := c.Ping(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Ping(result))
			return nil
		},
	}
}

func newDaemonCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the background daemon",
	}
	cmd.AddCommand(
		newDaemonRunCommand(opts),
		newDaemonStartCommand(opts),
		newDaemonStopCommand(opts),
		newDaemonStatusCommand(opts),
	)
	return cmd
}

func commandSetup(opts *rootOptions) (string, *Formatter, error) {
	ws, err := opts.resolveWorkspace()
	if err != nil {
		return "", nil, err
	}
	formatter, err := opts.formatter()
	if err != nil {
		return "", nil, err
	}
	return ws, formatter, nil
}

func queryInfo(file string, line, column uint32) string {
	return fmt.Sprintf("%s:%d:%d", file, line, column)
}
