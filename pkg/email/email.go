package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string // plain text
}

// Sender hands a message to an outbound relay.
// Implementations can be swapped between the SMTP relay and a logging stub.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	IsConfigured() bool
}

// SMTPSender delivers mail through an authenticated SMTP relay (Gmail by default)
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	dialer   *net.Dialer
	logger   *slog.Logger
}

// SMTPConfig holds the relay connection settings
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Logger   *slog.Logger // nil discards
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SMTPSender{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		dialer:   &net.Dialer{KeepAlive: -1},
		logger:   logger,
	}
}

// IsConfigured checks if the relay has host and credentials
func (s *SMTPSender) IsConfigured() bool {
	return s.host != "" && s.port != "" && s.username != "" && s.password != ""
}

// Send performs a single delivery attempt. The context deadline bounds the
// whole SMTP conversation, not just the dial.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to relay: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// unblock any pending read/write once ctx is done
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("failed to greet relay: %w", err)
	}
	defer c.Close()

	if !s.implicitTLS() {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(s.tlsConfig()); err != nil {
				return fmt.Errorf("failed to start tls: %w", err)
			}
		}
	}

	if s.username != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
				return fmt.Errorf("relay rejected credentials: %w", err)
			}
		}
	}

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("relay rejected sender: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("relay rejected recipient: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write(BuildMessage(msg)); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("relay refused message: %w", err)
	}

	if err := c.Quit(); err != nil {
		// message is already accepted at this point
		s.logger.Warn("smtp quit failed after message was accepted", "host", s.host, "error", err)
	}
	return nil
}

func (s *SMTPSender) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(s.host, s.port)
	if s.implicitTLS() {
		d := &tls.Dialer{NetDialer: s.dialer, Config: s.tlsConfig()}
		return d.DialContext(ctx, "tcp", addr)
	}
	return s.dialer.DialContext(ctx, "tcp", addr)
}

// port 465 is SMTPS, everything else negotiates STARTTLS
func (s *SMTPSender) implicitTLS() bool {
	return s.port == "465"
}

func (s *SMTPSender) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	}
}

// BuildMessage renders msg as an RFC 5322 text/plain message with CRLF line endings.
func BuildMessage(msg Message) []byte {
	var buf bytes.Buffer

	writeHeader(&buf, "From", msg.From)
	writeHeader(&buf, "To", msg.To)
	if msg.ReplyTo != "" {
		writeHeader(&buf, "Reply-To", msg.ReplyTo)
	}
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", sanitizeHeader(msg.Subject)))
	writeHeader(&buf, "Date", time.Now().Format(time.RFC1123Z))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", "text/plain; charset=UTF-8")
	writeHeader(&buf, "Content-Transfer-Encoding", "8bit")
	buf.WriteString("\r\n")

	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(sanitizeHeader(value))
	buf.WriteString("\r\n")
}

// sanitizeHeader folds CR/LF so submitter input cannot inject headers
func sanitizeHeader(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool {
		return r == '\r' || r == '\n'
	}), " ")
}

// LogSender logs messages instead of delivering them. Used for local development.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) IsConfigured() bool { return true }

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("sending email (log driver)",
		"to", msg.To,
		"from", msg.From,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"body_bytes", len(msg.Body),
	)
	return nil
}
