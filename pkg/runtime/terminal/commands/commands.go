package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/instance-isolator/pkg/adapters"
	"github.com/de-tools/instance-isolator/pkg/models/api"
	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/de-tools/instance-isolator/pkg/services/responder"
	"github.com/spf13/cobra"
)

type ResultReporter interface {
	Handle(result api.IsolationResponse) error
}

type Dependencies struct {
	Responder func(cmd *cobra.Command) (*responder.Responder, error)
	Reporter  ResultReporter
}

func respond(cmd *cobra.Command, deps Dependencies, ev domain.IncidentEvent) error {
	r, err := deps.Responder(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	isoErr := r.Respond(ctx, ev)
	if err := deps.Reporter.Handle(adapters.MapIsolationResultDomainToApi(ev, isoErr)); err != nil {
		return fmt.Errorf("failed to report result: %w", err)
	}
	return isoErr
}
