package terminal

import (
	"io"
	"os"

	"github.com/de-tools/instance-isolator/pkg/runtime/terminal/commands"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory    responder.Factory
	reporter   *Reporter
	rootCmd    *cobra.Command
	configPath string
	logOutput  io.Writer
}

// Options contain configuration for the CLI
type Options struct {
	Factory   responder.Factory
	Output    io.Writer
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Factory == nil {
		opts.Factory = responder.New
	}

	cli := &CLI{
		factory:   opts.Factory,
		reporter:  NewReporter(opts.Output),
		logOutput: opts.LogOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "isolator",
		Short:         "Quarantine EC2 instances named in security findings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&cli.configPath, "config", "c", "",
		"Path to a config file; environment variables override its values")

	deps := commands.Dependencies{
		Responder: cli.newResponder,
		Reporter:  cli.reporter,
	}
	cmd.AddCommand(commands.NewIsolateCmd(deps))
	cmd.AddCommand(commands.NewInvokeCmd(deps))

	return cmd
}

func (cli *CLI) newResponder(cmd *cobra.Command) (*responder.Responder, error) {
	return cli.factory(cmd.Context(), cli.configPath, cli.logOutput)
}
