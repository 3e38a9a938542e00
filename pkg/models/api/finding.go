package api

// FindingEvent is the trigger payload delivered by the finding source. Only
// the fields the responder reads are declared; everything else is ignored.
type FindingEvent struct {
	Region string        `json:"region"`
	Detail FindingDetail `json:"detail"`
}

type FindingDetail struct {
	Resource FindingResource `json:"resource"`
}

type FindingResource struct {
	InstanceDetails InstanceDetails `json:"instanceDetails"`
}

type InstanceDetails struct {
	InstanceID string `json:"instanceId"`
}

type IsolationResponse struct {
	InstanceID string `json:"instance_id"`
	Region     string `json:"region"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}
