package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"
)

type SNSAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNS publishes operator notifications to a topic.
type SNS struct {
	client SNSAPI
}

func NewSNS(client SNSAPI) *SNS {
	return &SNS{client: client}
}

func NewSNSFromConfig(cfg awssdk.Config) *SNS {
	return NewSNS(sns.NewFromConfig(cfg))
}

func (s *SNS) Publish(ctx context.Context, channelID, subject, message string) error {
	resp, err := s.client.Publish(ctx, &sns.PublishInput{
		TopicArn: awssdk.String(channelID),
		Subject:  awssdk.String(subject),
		Message:  awssdk.String(message),
	})
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("message_id", awssdk.ToString(resp.MessageId)).Msg("notification published")
	return nil
}
