// Package validator provides the validation service: a NATS
// request/reply endpoint that answers document validation requests with
// fault reports.
package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/apcheck/validate"
)

// requestTimeout bounds a single validation, including any reference
// fetches it performs.
const requestTimeout = 30 * time.Second

// Config holds the service connection settings.
type Config struct {
	// URL is the NATS server URL.
	URL string

	// Subject is the request subject the service answers on.
	Subject string

	// QueueGroup distributes requests across service instances.
	QueueGroup string
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		URL:        nats.DefaultURL,
		Subject:    "apcheck.validate",
		QueueGroup: "apcheck",
	}
}

// Service answers validation requests over NATS.
type Service struct {
	config    Config
	validator *validate.Validator
	logger    *slog.Logger

	conn *nats.Conn
	sub  *nats.Subscription

	// Lifecycle
	running   bool
	startTime time.Time
	mu        sync.RWMutex
	cancel    context.CancelFunc

	// Metrics
	requestsHandled atomic.Int64
	requestErrors   atomic.Int64
}

// New creates a validation service. Start must be called before it
// answers anything.
func New(config Config, v *validate.Validator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Subject == "" {
		config.Subject = DefaultConfig().Subject
	}
	if config.QueueGroup == "" {
		config.QueueGroup = DefaultConfig().QueueGroup
	}
	return &Service{config: config, validator: v, logger: logger}
}

// Start connects to NATS and subscribes to the request subject.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("service already running")
	}

	conn, err := nats.Connect(s.config.URL,
		nats.Name("apcheck-validator"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	sub, err := conn.QueueSubscribe(s.config.Subject, s.config.QueueGroup, func(msg *nats.Msg) {
		s.handle(ctx, msg)
	})
	if err != nil {
		cancel()
		conn.Close()
		return fmt.Errorf("subscribe to %s: %w", s.config.Subject, err)
	}

	s.conn = conn
	s.sub = sub
	s.cancel = cancel
	s.running = true
	s.startTime = time.Now()

	s.logger.Info("Validation service started",
		"subject", s.config.Subject,
		"queue", s.config.QueueGroup)
	return nil
}

// Stop drains the subscription and closes the connection. In-flight
// requests finish before the connection goes away.
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return nil
	}

	s.cancel()
	if err := s.sub.Drain(); err != nil {
		s.logger.Warn("Failed to drain subscription", "error", err)
	}
	if err := s.conn.Drain(); err != nil {
		s.logger.Warn("Failed to drain connection", "error", err)
	}
	s.conn.Close()

	s.running = false
	s.logger.Info("Validation service stopped",
		"requests_handled", s.requestsHandled.Load(),
		"request_errors", s.requestErrors.Load())
	return nil
}

// RequestsHandled returns the number of requests answered since start.
func (s *Service) RequestsHandled() int64 {
	return s.requestsHandled.Load()
}

// handle answers a single request message.
func (s *Service) handle(ctx context.Context, msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var req Request
	var resp Response
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		resp = Response{Error: fmt.Sprintf("malformed request: %v", err)}
		s.requestErrors.Add(1)
		requestsTotal.WithLabelValues("unknown", "error").Inc()
	} else {
		resp = s.validateRequest(ctx, req)
		s.requestsHandled.Add(1)
		outcome := "valid"
		if !resp.Valid {
			outcome = "faulted"
		}
		if resp.Error != "" {
			outcome = "error"
			s.requestErrors.Add(1)
		}
		requestsTotal.WithLabelValues(req.Profile.orDefault().String(), outcome).Inc()
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("Failed to marshal response", "error", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		s.logger.Warn("Failed to respond", "error", err)
	}
}

// validateRequest runs the requested validation profile over the
// request document.
func (s *Service) validateRequest(ctx context.Context, req Request) Response {
	var doc any
	if len(req.Document) > 0 {
		if err := json.Unmarshal(req.Document, &doc); err != nil {
			return Response{Error: fmt.Sprintf("malformed document: %v", err)}
		}
	}

	switch req.Profile.orDefault() {
	case ProfileObject:
		return newResponse(s.validator.ObjectFaults(doc))
	case ProfilePersistent:
		return newResponse(s.validator.PersistentObjectFaults(doc))
	case ProfileActor:
		return newResponse(s.validator.ActorFaults(doc))
	case ProfileActivity:
		return newResponse(s.validator.ActivityFaults(ctx, doc))
	case ProfileLink:
		return newResponse(s.validator.LinkFaults(doc))
	case ProfileCollection:
		return newResponse(s.validator.CollectionFaults(ctx, doc))
	default:
		return Response{Error: fmt.Sprintf("unknown validation profile: %q", req.Profile)}
	}
}
