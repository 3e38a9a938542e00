package commands

import (
	"github.com/de-tools/instance-isolator/pkg/adapters"
	"github.com/de-tools/instance-isolator/pkg/models/api"
	"github.com/spf13/cobra"
)

type IsolateCmd struct {
	instanceID string
	region     string
	deps       Dependencies
}

func NewIsolateCmd(deps Dependencies) *cobra.Command {
	ic := &IsolateCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "isolate",
		Short: "Isolate a single instance by id",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.instanceID, "instance-id", "", "Instance to isolate (e.g., i-0abc123)")
	cmd.Flags().StringVar(&ic.region, "region", "", "Region the instance runs in")

	_ = cmd.MarkFlagRequired("instance-id")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func (ic *IsolateCmd) run(cmd *cobra.Command, _ []string) error {
	ev, err := adapters.MapFindingApiToDomain(api.FindingEvent{
		Region: ic.region,
		Detail: api.FindingDetail{
			Resource: api.FindingResource{
				InstanceDetails: api.InstanceDetails{InstanceID: ic.instanceID},
			},
		},
	})
	if err != nil {
		return err
	}
	return respond(cmd, ic.deps, ev)
}
