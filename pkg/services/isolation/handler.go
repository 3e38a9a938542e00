package isolation

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Tagger    ResourceTagger
	Reader    ResourceReader
	Mutator   NetworkAttachmentMutator
	Snapshots SnapshotCreator
	Notifier  Notifier
}

type Config struct {
	IsolationGroupID      string
	NotificationChannelID string
	Tag                   domain.IsolationTag
}

// Handler runs the isolation procedure for one incident at a time. It keeps
// no state between calls.
type Handler struct {
	deps   Dependencies
	config Config
}

func NewHandler(deps Dependencies, config Config) (*Handler, error) {
	if deps.Tagger == nil || deps.Reader == nil || deps.Mutator == nil ||
		deps.Snapshots == nil || deps.Notifier == nil {
		return nil, fmt.Errorf("all isolation dependencies must be provided")
	}
	if config.IsolationGroupID == "" {
		return nil, fmt.Errorf("isolation group id is required")
	}
	if config.NotificationChannelID == "" {
		return nil, fmt.Errorf("notification channel id is required")
	}
	if config.Tag.Key == "" {
		config.Tag = domain.IsolationTag{Key: domain.DefaultTagKey, Value: domain.DefaultTagValue}
	}

	return &Handler{deps: deps, config: config}, nil
}

// Handle tags, quarantines, snapshots and reports the instance named by ev.
// Steps that completed before a failure are left in place. The returned
// error is the one raised by the failing call.
func (h *Handler) Handle(ctx context.Context, ev domain.IncidentEvent) error {
	logger := zerolog.Ctx(ctx).With().
		Str("instance_id", ev.InstanceID).
		Str("region", ev.Region).
		Logger()
	ctx = logger.WithContext(ctx)

	message, step, err := h.isolate(ctx, ev)
	if err != nil {
		entry := logger.Error().Err(err).Str("step", string(step))
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			entry = entry.Str("code", apiErr.ErrorCode())
		}
		entry.Msg("error isolating instance")
		return err
	}

	logger.Info().
		Str("channel", h.config.NotificationChannelID).
		Msgf("isolation completed: %s", message)
	return nil
}

func (h *Handler) isolate(ctx context.Context, ev domain.IncidentEvent) (string, Step, error) {
	logger := zerolog.Ctx(ctx)

	err := h.deps.Tagger.Tag(ctx, ev.InstanceID, h.config.Tag.Key, h.config.Tag.Value)
	if err != nil {
		return "", StepTag, err
	}

	attachmentID, err := h.resolveAttachment(ctx, ev.InstanceID)
	if err != nil {
		return "", StepResolveAttachment, err
	}

	err = h.deps.Mutator.ReplaceGroups(ctx, attachmentID, []string{h.config.IsolationGroupID})
	if err != nil {
		return "", StepReplaceGroups, err
	}
	logger.Debug().
		Str("attachment_id", attachmentID).
		Str("group_id", h.config.IsolationGroupID).
		Msg("network attachment quarantined")

	desc, err := h.deps.Reader.Describe(ctx, ev.InstanceID)
	if err != nil {
		return "", StepSnapshot, err
	}
	for _, volumeID := range desc.VolumeMappings {
		if err := h.deps.Snapshots.Create(ctx, volumeID, SnapshotDescription(ev.InstanceID)); err != nil {
			return "", StepSnapshot, err
		}
		logger.Debug().Str("volume_id", volumeID).Msg("snapshot requested")
	}

	message := NotificationMessage(ev)
	err = h.deps.Notifier.Publish(ctx, h.config.NotificationChannelID, NotificationSubject, message)
	if err != nil {
		return "", StepNotify, err
	}

	return message, "", nil
}

func (h *Handler) resolveAttachment(ctx context.Context, instanceID string) (string, error) {
	desc, err := h.deps.Reader.Describe(ctx, instanceID)
	if err != nil {
		return "", err
	}

	switch n := len(desc.NetworkAttachments); n {
	case 1:
		return desc.NetworkAttachments[0], nil
	case 0:
		return "", &AttachmentError{InstanceID: instanceID, Found: n, Err: ErrNoNetworkAttachment}
	default:
		return "", &AttachmentError{InstanceID: instanceID, Found: n, Err: ErrMultipleNetworkAttachments}
	}
}
