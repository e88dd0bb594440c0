package domain

import (
	"context"
	"errors"
)

// Fixed texts returned to the submitter
const (
	MessageSent       = "Message sent successfully!"
	MessageSendFailed = "Failed to send message"
)

var (
	// ErrRelayNotConfigured means sender credentials or the recipient are missing
	ErrRelayNotConfigured = errors.New("email relay is not configured")
	// ErrDispatchFailed wraps any failure while handing the message to the relay
	ErrDispatchFailed = errors.New("failed to dispatch contact email")
)

// ContactSubmission represents a contact form submission. It lives for one request only.
type ContactSubmission struct {
	Name    string `json:"name" binding:"required,notblank"`
	Email   string `json:"email" binding:"required,notblank,contact_email"`
	Message string `json:"message" binding:"required,notblank"`
}

// SubmissionResult is the outcome reported back to the submitter
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and makes one dispatch attempt.
	// Validation problems come back as *apperror.AppError; dispatch problems wrap ErrDispatchFailed.
	SendContactMessage(ctx context.Context, req *ContactSubmission) error
	// RelayConfigured reports whether dispatch can be attempted at all
	RelayConfigured() bool
}
