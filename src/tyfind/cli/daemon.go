package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tyfind/tyfind/src/tyfind/app"
	"github.com/tyfind/tyfind/src/tyfind/client"
	"go.uber.org/fx"
)

// newDaemonRunCommand runs the daemon in the foreground. The bootstrapper
// spawns this command detached; running it by hand is useful for debugging.
func newDaemonRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fx.New(app.Module).Run()
			return nil
		},
	}
}

func newDaemonStartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the daemon in the background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			c, err := client.EnsureRunning(ctx, opts.logger())
			if err != nil {
				return err
			}
			defer c.Close()

			if _, err := c.Ping(ctx); err != nil {
				return err
			}
			fmt.Println("Daemon is running.")
			return nil
		},
	}
}

func newDaemonStopCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop a running daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			c, err := client.Connect(ctx, client.DefaultEndpoint())
			if err != nil {
				fmt.Println("Daemon is not running.")
				return nil
			}
			defer c.Close()

			if _, err := c.Shutdown(ctx); err != nil {
				return err
			}
			fmt.Println("Daemon stopped.")
			return nil
		},
	}
}

func newDaemonStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether the daemon is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := opts.formatter()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			c, err := client.Connect(ctx, client.DefaultEndpoint())
			if err != nil {
				fmt.Println("Daemon is not running.")
				return nil
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
