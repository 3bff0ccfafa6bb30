package events

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Publisher is a minimal interface for publishing messages to a topic.
type Publisher interface {
	Publish(ctx context.Context, topicArn string, message []byte) error
}

// SNSPublisher publishes raw messages to AWS SNS.
type SNSPublisher struct {
	client *sns.Client
}

// NewSNSPublisher loads the default AWS config and builds an SNS
// client.
func NewSNSPublisher(ctx context.Context) (*SNSPublisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SNSPublisher{client: sns.NewFromConfig(cfg)}, nil
}

// Publish publishes a raw message to the given SNS topic ARN.
func (p *SNSPublisher) Publish(ctx context.Context, topicArn string, message []byte) error {
	if topicArn == "" {
		return fmt.Errorf("empty topicArn")
	}
	msg := string(message)
	input := &sns.PublishInput{
		TopicArn: &topicArn,
		Message:  &msg,
	}
	if _, err := p.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", topicArn, err)
	}
	return nil
}
