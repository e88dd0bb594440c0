package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/pkg/apperror"
	"github.com/shri8977/FUTURE-FS-01/pkg/email"
	"github.com/shri8977/FUTURE-FS-01/pkg/logger"
	"github.com/shri8977/FUTURE-FS-01/pkg/metrics"
	"github.com/shri8977/FUTURE-FS-01/pkg/validation"
)

const contactSubjectFormat = "Portfolio Contact Form - Message from %s"

// contactBodyTemplate is the plain text body for contact form emails
var contactBodyTemplate = template.Must(template.New("contact").Parse(
	"Name: {{.Name}}\nEmail: {{.Email}}\nMessage:\n{{.Message}}",
))

// ContactRoute is the fixed sender/recipient pair every submission is relayed through
type ContactRoute struct {
	From string // sender account identity
	To   string // destination recipient
}

type contactUsecase struct {
	sender  email.Sender
	route   ContactRoute
	timeout time.Duration
}

// NewContactUsecase creates a new contact usecase. timeout bounds each dispatch attempt.
func NewContactUsecase(sender email.Sender, route ContactRoute, timeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		sender:  sender,
		route:   route,
		timeout: timeout,
	}
}

func (uc *contactUsecase) RelayConfigured() bool {
	return uc.sender.IsConfigured() && uc.route.From != "" && uc.route.To != ""
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	sub := domain.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}

	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		return apperror.BadRequest("Please fill in all fields.")
	}
	if !validation.IsContactEmail(sub.Email) {
		metrics.RecordSubmission(metrics.OutcomeInvalid)
		return apperror.BadRequest("Please enter a valid email.")
	}

	log := logger.Log.With("request_id", requestID(ctx))

	if !uc.RelayConfigured() {
		metrics.RecordSubmission(metrics.OutcomeFailed)
		log.Error("Contact email not sent", "error", domain.ErrRelayNotConfigured)
		return fmt.Errorf("%w: %w", domain.ErrDispatchFailed, domain.ErrRelayNotConfigured)
	}

	msg, err := uc.compose(sub)
	if err != nil {
		metrics.RecordSubmission(metrics.OutcomeFailed)
		log.Error("Failed to compose contact email", "error", err)
		return fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	err = uc.sender.Send(ctx, msg)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordDispatch(metrics.OutcomeFailed, elapsed)
		metrics.RecordSubmission(metrics.OutcomeFailed)
		log.Error("Failed to send contact email",
			"error", err,
			"reply_to", sub.Email,
			"timed_out", errors.Is(err, context.DeadlineExceeded),
			"duration_ms", elapsed.Milliseconds(),
		)
		return fmt.Errorf("%w: %w", domain.ErrDispatchFailed, err)
	}

	metrics.RecordDispatch(metrics.OutcomeDelivered, elapsed)
	metrics.RecordSubmission(metrics.OutcomeDelivered)
	log.Info("Contact email sent", "duration_ms", elapsed.Milliseconds())
	return nil
}

func (uc *contactUsecase) compose(sub domain.ContactSubmission) (email.Message, error) {
	var body bytes.Buffer
	if err := contactBodyTemplate.Execute(&body, sub); err != nil {
		return email.Message{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	return email.Message{
		From:    uc.route.From,
		To:      uc.route.To,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf(contactSubjectFormat, sub.Name),
		Body:    body.String(),
	}, nil
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
