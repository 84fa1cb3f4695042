package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"fhsis/internal/domain"
	"fhsis/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed NotificationSender.
func NewSESSender(region, fromAddress, fromName string) (port.NotificationSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendAppointmentConfirmation(ctx context.Context, appt *domain.Appointment, categoryName string) error {
	if appt.Email == "" {
		return nil
	}
	subject := "Your health office appointment request"
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your %s appointment request for %s. You will be notified once it is confirmed.\n\nMunicipal Health Office",
		appt.PatientName, categoryName, appt.ScheduledAt.Format("January 2, 2006 3:04 PM"))
	return s.send(ctx, appt.Email, subject, body)
}

func (s *sesSender) SendAppointmentStatusChange(ctx context.Context, appt *domain.Appointment, categoryName string) error {
	if appt.Email == "" {
		return nil
	}
	subject := fmt.Sprintf("Appointment %s", appt.Status)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s appointment scheduled for %s is now %s.\n\nMunicipal Health Office",
		appt.PatientName, categoryName, appt.ScheduledAt.Format("January 2, 2006 3:04 PM"), appt.Status)
	return s.send(ctx, appt.Email, subject, body)
}

func (s *sesSender) send(ctx context.Context, to, subject, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
