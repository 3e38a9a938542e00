package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/de-tools/instance-isolator/pkg/models/api"
	"github.com/de-tools/instance-isolator/pkg/models/domain"
)

func MapFindingApiToDomain(ev api.FindingEvent) (domain.IncidentEvent, error) {
	incident := domain.IncidentEvent{
		Region:     ev.Region,
		InstanceID: ev.Detail.Resource.InstanceDetails.InstanceID,
	}
	if incident.InstanceID == "" {
		return domain.IncidentEvent{}, &domain.InvalidEventError{Field: "detail.resource.instanceDetails.instanceId"}
	}
	if incident.Region == "" {
		return domain.IncidentEvent{}, &domain.InvalidEventError{Field: "region"}
	}
	return incident, nil
}

// DecodeFindingEvent parses a raw finding payload into an IncidentEvent.
func DecodeFindingEvent(data []byte) (domain.IncidentEvent, error) {
	var ev api.FindingEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return domain.IncidentEvent{}, fmt.Errorf("failed to decode finding event: %w", err)
	}
	return MapFindingApiToDomain(ev)
}

func MapIsolationResultDomainToApi(ev domain.IncidentEvent, err error) api.IsolationResponse {
	resp := api.IsolationResponse{
		InstanceID: ev.InstanceID,
		Region:     ev.Region,
		Status:     "isolated",
	}
	if err != nil {
		resp.Status = "failed"
		resp.Error = err.Error()
	}
	return resp
}
