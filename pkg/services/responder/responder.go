package responder

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/instance-isolator/pkg/models/domain"
	"github.com/de-tools/instance-isolator/pkg/services/cloud/aws"
	"github.com/de-tools/instance-isolator/pkg/services/config"
	"github.com/de-tools/instance-isolator/pkg/services/isolation"
	"github.com/rs/zerolog"
)

// Responder bundles an isolator with the logger its invocations run under.
type Responder struct {
	Isolator isolation.Isolator
	Logger   zerolog.Logger
}

// Factory is how the runtimes obtain a Responder once flags are parsed.
type Factory func(ctx context.Context, configPath string, out io.Writer) (*Responder, error)

// New loads configuration, builds the AWS clients and returns a Responder
// backed by the isolation handler.
func New(ctx context.Context, configPath string, out io.Writer) (*Responder, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := cfg.NewLogger(out)
	if err != nil {
		return nil, err
	}

	awsCfg, err := aws.LoadConfig(ctx, cfg.AWS())
	if err != nil {
		return nil, err
	}

	handler, err := isolation.NewHandler(aws.NewDependencies(*awsCfg), cfg.Isolation())
	if err != nil {
		return nil, fmt.Errorf("failed to create isolation handler: %w", err)
	}

	logger.Debug().
		Str("isolation_sg", cfg.IsolationGroupID).
		Str("sns_topic", cfg.NotificationTopic).
		Str("aws_region", awsCfg.Region).
		Msg("responder configured")

	return &Responder{Isolator: handler, Logger: logger}, nil
}

// Respond runs the isolator with the responder's logger attached to ctx.
func (r *Responder) Respond(ctx context.Context, ev domain.IncidentEvent) error {
	return r.Isolator.Handle(r.Logger.WithContext(ctx), ev)
}
