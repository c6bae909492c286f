package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/diljithmon170/GK-Group/config"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

// emailSender is the part of the Resend emails API the service uses.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService notifies site operators about new contact messages.
type EmailService struct {
	config  *config.EmailConfig
	sender  emailSender
	metrics *EmailMetrics
}

// NewEmailService creates an EmailService that sends through Resend and
// registers its metrics with reg.
func NewEmailService(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", cfg.FromAddress,
		"notify", logger.MaskEmail(cfg.NotifyAddress))
	client := resend.NewClient(cfg.ResendAPIKey)
	return newEmailService(cfg, client.Emails, reg)
}

func newEmailService(cfg *config.EmailConfig, sender emailSender, reg prometheus.Registerer) *EmailService {
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gkgroup_email_send_duration_seconds",
			Help:    "Time taken to send emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gkgroup_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gkgroup_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		sender:  sender,
		metrics: metrics,
	}
}

// NotifyContactMessage e-mails the operator inbox about msg. Replies go
// straight to the visitor.
func (s *EmailService) NotifyContactMessage(ctx context.Context, msg *types.ContactMessage) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	var htmlContent bytes.Buffer
	if err := contactNotificationTemplate.Execute(&htmlContent, notificationData{
		Message:      msg,
		InterestArea: msg.InterestArea.Label(),
		Received:     msg.CreatedAt.UTC().Format("2006-01-02 15:04 MST"),
	}); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to execute email template", "error", err)
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("[%s] %s", msg.InterestArea.Label(), msg.Subject)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress),
		To:      []string{s.config.NotifyAddress},
		Subject: subject,
		Html:    htmlContent.String(),
		ReplyTo: msg.Email,
	}

	if _, err := s.sender.SendWithContext(ctx, params); err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"message_id", msg.ID,
			"subject", subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Contact notification sent",
		"message_id", msg.ID,
		"from", logger.MaskEmail(msg.Email))

	return nil
}

type notificationData struct {
	Message      *types.ContactMessage
	InterestArea string
	Received     string
}

var contactNotificationTemplate = template.Must(template.New("contact_notification").Parse(contactNotificationHTML))

const contactNotificationHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New contact message</title>
    <style>
        body { font-family: sans-serif; background-color: #f7f7f7; color: #333333; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 24px; border-radius: 8px; }
        th { text-align: left; padding-right: 12px; vertical-align: top; }
        .message { white-space: pre-wrap; border-top: 1px solid #eeeeee; margin-top: 16px; padding-top: 16px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>New message from the website</h2>
        <table>
            <tr><th>Name</th><td>{{.Message.Name}}</td></tr>
            <tr><th>Email</th><td>{{.Message.Email}}</td></tr>
            {{- if .Message.Phone}}
            <tr><th>Phone</th><td>{{.Message.Phone}}</td></tr>
            {{- end}}
            <tr><th>Interest</th><td>{{.InterestArea}}</td></tr>
            <tr><th>Subject</th><td>{{.Message.Subject}}</td></tr>
            <tr><th>Received</th><td>{{.Received}}</td></tr>
        </table>
        <div class="message">{{.Message.Message}}</div>
    </div>
</body>
</html>`
