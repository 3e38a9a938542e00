package lambda

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/de-tools/instance-isolator/pkg/adapters"
	"github.com/de-tools/instance-isolator/pkg/models/api"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
)

// Handler adapts EventBridge deliveries to the isolation responder.
type Handler struct {
	responder *responder.Responder
}

func NewHandler(r *responder.Responder) *Handler {
	return &Handler{responder: r}
}

// Invoke is registered with lambda.Start. Errors are returned to the Lambda
// runtime as they were raised so the invocation is marked failed.
func (h *Handler) Invoke(ctx context.Context, ev events.CloudWatchEvent) error {
	logger := h.responder.Logger.With().Logger()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With().Str("request_id", lc.AwsRequestID).Logger()
	}
	ctx = logger.WithContext(ctx)

	logger.Info().
		Str("source", ev.Source).
		Str("detail_type", ev.DetailType).
		RawJSON("detail", detailOrNull(ev.Detail)).
		Msg("received finding event")

	var detail api.FindingDetail
	if err := json.Unmarshal(ev.Detail, &detail); err != nil {
		err = fmt.Errorf("failed to decode finding detail: %w", err)
		logger.Error().Err(err).Msg("error isolating instance")
		return err
	}

	incident, err := adapters.MapFindingApiToDomain(api.FindingEvent{Region: ev.Region, Detail: detail})
	if err != nil {
		logger.Error().Err(err).Msg("error isolating instance")
		return err
	}

	return h.responder.Isolator.Handle(ctx, incident)
}

func detailOrNull(raw json.RawMessage) []byte {
	if len(raw) == 0 || !json.Valid(raw) {
		return []byte("null")
	}
	return raw
}
