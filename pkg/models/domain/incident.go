package domain

import "fmt"

const (
	DefaultTagKey   = "Incident"
	DefaultTagValue = "Auto-Isolated"
)

// IncidentEvent identifies the instance a finding was raised for.
type IncidentEvent struct {
	Region     string
	InstanceID string
}

type IsolationTag struct {
	Key   string
	Value string
}

// InstanceDescription is the transient view of an instance read from the
// provider. Both slices keep provider order.
type InstanceDescription struct {
	InstanceID         string
	NetworkAttachments []string
	VolumeMappings     []string
}

type InvalidEventError struct {
	Field string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid incident event: missing %s", e.Field)
}
