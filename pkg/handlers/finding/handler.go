package finding

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/de-tools/instance-isolator/pkg/adapters"
	"github.com/de-tools/instance-isolator/pkg/models/api"
	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/de-tools/instance-isolator/pkg/services/isolation"
	"github.com/rs/zerolog"
)

const (
	maxEventBytes = 1 << 20
)

type Handler struct {
	isolator isolation.Isolator
}

func NewHandler(isolator isolation.Isolator) *Handler {
	return &Handler{isolator: isolator}
}

// IsolateFinding runs the isolation procedure for the posted finding event
// and answers once every step has returned.
func (h *Handler) IsolateFinding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBytes))
	if err != nil {
		writeJSON(w, logger, http.StatusRequestEntityTooLarge, api.IsolationResponse{Status: "rejected", Error: err.Error()})
		return
	}

	ev, err := adapters.DecodeFindingEvent(body)
	if err != nil {
		var invalid *domain.InvalidEventError
		if errors.As(err, &invalid) {
			logger.Warn().Str("field", invalid.Field).Msg("finding event is missing a required field")
		}
		writeJSON(w, logger, http.StatusBadRequest, api.IsolationResponse{Status: "rejected", Error: err.Error()})
		return
	}

	err = h.isolator.Handle(ctx, ev)
	status := http.StatusAccepted
	if err != nil {
		status = http.StatusBadGateway
	}
	writeJSON(w, logger, status, adapters.MapIsolationResultDomainToApi(ev, err))
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, resp api.IsolationResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().
			Err(err).
			Str("instance_id", resp.InstanceID).
			Msg("failed to encode isolation response")
	}
}
