package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/instance-isolator/pkg/adapters"
	"github.com/spf13/cobra"
)

type InvokeCmd struct {
	eventPath string
	deps      Dependencies
}

func NewInvokeCmd(deps Dependencies) *cobra.Command {
	ic := &InvokeCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Replay a finding event payload through the isolation procedure",
		RunE:  ic.run,
	}

	cmd.Flags().StringVarP(&ic.eventPath, "event", "e", "", "Path to the event JSON, or - for stdin")
	_ = cmd.MarkFlagRequired("event")

	return cmd
}

func (ic *InvokeCmd) run(cmd *cobra.Command, _ []string) error {
	var (
		data []byte
		err  error
	)
	if ic.eventPath == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(ic.eventPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read event %s: %w", ic.eventPath, err)
	}

	ev, err := adapters.DecodeFindingEvent(data)
	if err != nil {
		return err
	}
	return respond(cmd, ic.deps, ev)
}
