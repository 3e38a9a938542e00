package aws

import (
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/de-tools/instance-isolator/pkg/services/isolation"
)

// NewDependencies wires the EC2 and SNS clients built from cfg into the
// capabilities the isolation handler expects.
func NewDependencies(cfg awssdk.Config) isolation.Dependencies {
	compute := NewEC2FromConfig(cfg)
	return isolation.Dependencies{
		Tagger:    compute,
		Reader:    compute,
		Mutator:   compute,
		Snapshots: compute,
		Notifier:  NewSNSFromConfig(cfg),
	}
}
