// Package contactclient submits the portfolio contact form the same way the
// browser does: local validation first, then one JSON POST to /send, with the
// outcome reported through a status indicator.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shri8977/FUTURE-FS-01/pkg/validation"
)

// Status texts shown to the user
const (
	TextFillAllFields  = "Please fill in all fields."
	TextInvalidEmail   = "Please enter a valid email."
	TextSending        = "Sending..."
	TextNetworkFailure = "Failed to send message. Try again later."
)

const (
	DefaultTimeout  = 15 * time.Second
	maxResponseSize = 64 << 10
)

var (
	ErrEmptyField   = errors.New("contactclient: all fields are required")
	ErrInvalidEmail = errors.New("contactclient: invalid email address")
	ErrNetwork      = errors.New("contactclient: request failed")
	ErrRejected     = errors.New("contactclient: service reported failure")
	ErrInFlight     = errors.New("contactclient: a submission is already in flight")
)

// State is the position of the status indicator
type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

// Status is what the indicator shows. Err classifies failures and is never shown.
type Status struct {
	State State
	Text  string
	Err   error
}

// Form holds the three raw input fields
type Form struct {
	Name    string
	Email   string
	Message string
}

// Reset clears the inputs, as the page does after a successful send
func (f *Form) Reset() {
	*f = Form{}
}

type payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type result struct {
	Success *bool   `json:"success"`
	Message *string `json:"message"`
}

type Option func(*Client)

// WithHTTPClient sends through a copy of hc. Its Timeout is kept unless
// WithTimeout is also given; hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.base = hc }
}

// WithTimeout bounds each submission end to end
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithObserver is called on every status change, including the transient sending state
func WithObserver(fn func(Status)) Option {
	return func(c *Client) { c.observe = fn }
}

type Client struct {
	endpoint string
	http     *http.Client
	observe  func(Status)

	// set by options, resolved into http by New
	base    *http.Client
	timeout time.Duration

	inFlight atomic.Bool

	mu     sync.Mutex
	status Status
}

// New returns a client posting to baseURL + "/send"
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/send",
		status:   Status{State: StateIdle},
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := http.Client{Timeout: DefaultTimeout}
	if c.base != nil {
		hc = *c.base
	}
	if c.timeout > 0 {
		hc.Timeout = c.timeout
	}
	c.http = &hc
	return c
}

// Status returns what the indicator currently shows
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Close releases idle connections
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Submit validates form and, if it passes, sends it. At most one submission
// runs at a time; a concurrent call returns ErrInFlight without touching the
// indicator. On success the form is reset; on any failure it is left as is.
func (c *Client) Submit(ctx context.Context, form *Form) Status {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Status{State: StateSending, Text: TextSending, Err: ErrInFlight}
	}
	defer c.inFlight.Store(false)

	p := payload{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Message: strings.TrimSpace(form.Message),
	}

	if p.Name == "" || p.Email == "" || p.Message == "" {
		return c.set(Status{State: StateFailure, Text: TextFillAllFields, Err: ErrEmptyField})
	}
	if !validation.IsContactEmail(p.Email) {
		return c.set(Status{State: StateFailure, Text: TextInvalidEmail, Err: ErrInvalidEmail})
	}

	c.set(Status{State: StateSending, Text: TextSending})

	res, err := c.post(ctx, p)
	if err != nil {
		return c.set(Status{State: StateFailure, Text: TextNetworkFailure, Err: fmt.Errorf("%w: %w", ErrNetwork, err)})
	}

	if !*res.Success {
		return c.set(Status{State: StateFailure, Text: *res.Message, Err: ErrRejected})
	}
	form.Reset()
	return c.set(Status{State: StateSuccess, Text: *res.Message})
}

// post sends one request. Any structured reply counts, whatever the HTTP status.
func (c *Client) post(ctx context.Context, p payload) (*result, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}

	var res result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if res.Success == nil || res.Message == nil {
		return nil, fmt.Errorf("incomplete response (status %d)", resp.StatusCode)
	}
	return &res, nil
}

func (c *Client) set(s Status) Status {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()

	if c.observe != nil {
		c.observe(s)
	}
	return s
}
