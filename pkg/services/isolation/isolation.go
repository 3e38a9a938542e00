package isolation

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/instance-isolator/pkg/models/domain"
)

const (
	NotificationSubject = "GuardDuty Auto-Isolation"
)

// Isolator is what the trigger surfaces drive. *Handler implements it.
type Isolator interface {
	Handle(ctx context.Context, ev domain.IncidentEvent) error
}

type ResourceTagger interface {
	Tag(ctx context.Context, resourceID, key, value string) error
}

type ResourceReader interface {
	Describe(ctx context.Context, resourceID string) (*domain.InstanceDescription, error)
}

// NetworkAttachmentMutator overwrites the group membership of an attachment.
// The previous groups are discarded.
type NetworkAttachmentMutator interface {
	ReplaceGroups(ctx context.Context, attachmentID string, groupIDs []string) error
}

// SnapshotCreator requests a snapshot and returns once the request is
// accepted, not when the snapshot completes.
type SnapshotCreator interface {
	Create(ctx context.Context, volumeID, description string) error
}

type Notifier interface {
	Publish(ctx context.Context, channelID, subject, message string) error
}

type Step string

const (
	StepTag               Step = "tag"
	StepResolveAttachment Step = "resolve-attachment"
	StepReplaceGroups     Step = "replace-groups"
	StepSnapshot          Step = "snapshot"
	StepNotify            Step = "notify"
)

var (
	ErrNoNetworkAttachment        = errors.New("instance has no network attachment")
	ErrMultipleNetworkAttachments = errors.New("instance has more than one network attachment")
)

type AttachmentError struct {
	InstanceID string
	Found      int
	Err        error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("cannot isolate instance %s: %v (found %d)", e.InstanceID, e.Err, e.Found)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}

func SnapshotDescription(instanceID string) string {
	return fmt.Sprintf("Incident snapshot for %s", instanceID)
}

func NotificationMessage(ev domain.IncidentEvent) string {
	return fmt.Sprintf("Instance %s isolated successfully in region %s", ev.InstanceID, ev.Region)
}
