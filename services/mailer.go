package services

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailSender sends one email. The marketing controller depends on this
// interface so bulk sends are testable without SES.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

// SESMailer sends through Amazon SES.
type SESMailer struct {
	client *ses.Client
	from   string
}

func NewSESMailer() (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("aws config load failed: %w", err)
	}

	from := os.Getenv("SES_EMAIL")
	if from == "" {
		return nil, fmt.Errorf("SES_EMAIL is not configured")
	}

	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		from:   from,
	}, nil
}

func (m *SESMailer) Send(to, subject, htmlBody string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(htmlBody),
				},
			},
		},
		Source: aws.String(m.from),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
