package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/rs/zerolog"
)

// EC2API is the subset of *ec2.Client the responder calls.
type EC2API interface {
	CreateTags(ctx context.Context, in *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
	DescribeInstances(ctx context.Context, in *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	ModifyNetworkInterfaceAttribute(
		ctx context.Context,
		in *ec2.ModifyNetworkInterfaceAttributeInput,
		optFns ...func(*ec2.Options),
	) (*ec2.ModifyNetworkInterfaceAttributeOutput, error)
	CreateSnapshot(ctx context.Context, in *ec2.CreateSnapshotInput, optFns ...func(*ec2.Options)) (*ec2.CreateSnapshotOutput, error)
}

type InstanceNotFoundError struct {
	InstanceID string
}

func (e *InstanceNotFoundError) Error() string {
	return fmt.Sprintf("instance %s not found", e.InstanceID)
}

// EC2 backs the tag, describe, group replacement and snapshot capabilities.
type EC2 struct {
	client EC2API
}

func NewEC2(client EC2API) *EC2 {
	return &EC2{client: client}
}

func NewEC2FromConfig(cfg awssdk.Config) *EC2 {
	return NewEC2(ec2.NewFromConfig(cfg))
}

func (e *EC2) Tag(ctx context.Context, resourceID, key, value string) error {
	_, err := e.client.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: []string{resourceID},
		Tags: []types.Tag{
			{Key: awssdk.String(key), Value: awssdk.String(value)},
		},
	})
	return err
}

func (e *EC2) Describe(ctx context.Context, resourceID string) (*domain.InstanceDescription, error) {
	resp, err := e.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{resourceID},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Reservations) == 0 || len(resp.Reservations[0].Instances) == 0 {
		return nil, &InstanceNotFoundError{InstanceID: resourceID}
	}

	instance := resp.Reservations[0].Instances[0]
	desc := &domain.InstanceDescription{
		InstanceID: awssdk.ToString(instance.InstanceId),
	}
	for _, ni := range instance.NetworkInterfaces {
		desc.NetworkAttachments = append(desc.NetworkAttachments, awssdk.ToString(ni.NetworkInterfaceId))
	}
	for _, mapping := range instance.BlockDeviceMappings {
		if mapping.Ebs == nil || mapping.Ebs.VolumeId == nil {
			zerolog.Ctx(ctx).Debug().
				Str("device", awssdk.ToString(mapping.DeviceName)).
				Msg("skipping non-EBS block device mapping")
			continue
		}
		desc.VolumeMappings = append(desc.VolumeMappings, *mapping.Ebs.VolumeId)
	}
	return desc, nil
}

func (e *EC2) ReplaceGroups(ctx context.Context, attachmentID string, groupIDs []string) error {
	_, err := e.client.ModifyNetworkInterfaceAttribute(ctx, &ec2.ModifyNetworkInterfaceAttributeInput{
		NetworkInterfaceId: awssdk.String(attachmentID),
		Groups:             groupIDs,
	})
	return err
}

func (e *EC2) Create(ctx context.Context, volumeID, description string) error {
	resp, err := e.client.CreateSnapshot(ctx, &ec2.CreateSnapshotInput{
		VolumeId:    awssdk.String(volumeID),
		Description: awssdk.String(description),
	})
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().
		Str("volume_id", volumeID).
		Str("snapshot_id", awssdk.ToString(resp.SnapshotId)).
		Msg("snapshot accepted")
	return nil
}
