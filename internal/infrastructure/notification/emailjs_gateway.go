package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"chennai_builders/internal/domain/entities"
	"chennai_builders/internal/usecase/interfaces"
)

const (
	defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

	// The upstream call has no streaming or retry semantics; a slow
	// relay should fail the submission, not hang it.
	requestTimeout = 10 * time.Second
)

var (
	ErrMissingEmailJSConfig        = errors.New("missing EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID or EMAILJS_PUBLIC_KEY")
	ErrEmailJSGatewayNotConfigured = errors.New("emailjs gateway not configured")
)

// EmailJSGateway relays contact requests through the EmailJS REST API.
//
// Supported env vars:
//   - EMAILJS_SERVICE_ID
//   - EMAILJS_TEMPLATE_ID
//   - EMAILJS_PUBLIC_KEY
//   - EMAILJS_ENDPOINT (optional override, used by tests)
//   - NOTIFICATION_GATEWAY_MOCK / EMAILJS_MOCK (skip the external call)

type EmailJSGateway struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
	mockMode   bool
}

var _ interfaces.INotificationGateway = (*EmailJSGateway)(nil)

func NewEmailJSGateway() (*EmailJSGateway, error) {
	if isNotificationGatewayMockEnabled() {
		log.Printf("[notification][gateway] mock mode enabled")
		return &EmailJSGateway{mockMode: true}, nil
	}

	serviceID := os.Getenv("EMAILJS_SERVICE_ID")
	templateID := os.Getenv("EMAILJS_TEMPLATE_ID")
	publicKey := os.Getenv("EMAILJS_PUBLIC_KEY")
	if serviceID == "" || templateID == "" || publicKey == "" {
		log.Printf("[notification][gateway] missing EmailJS configuration")
		return nil, ErrMissingEmailJSConfig
	}

	endpoint := os.Getenv("EMAILJS_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	log.Printf("[notification][gateway] EmailJS client initialized service_id=%s", serviceID)

	return &EmailJSGateway{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		endpoint:   endpoint,
		client:     &http.Client{Timeout: requestTimeout},
	}, nil
}

// emailJSRequest is the wire format of the EmailJS send endpoint.
type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

// templateParams matches the email template contract: sender identity,
// subject, the rendered cost breakdown and a long-format date.
type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Date      string `json:"date"`
}

func (g *EmailJSGateway) Send(ctx context.Context, req entities.ContactRequest) error {
	if g != nil && g.mockMode {
		log.Printf("[notification][gateway] mock send from=%s subject=%q", req.Fields.Email, req.Subject)
		return nil
	}
	if g == nil || g.client == nil {
		log.Printf("[notification][gateway] gateway not configured")
		return ErrEmailJSGatewayNotConfigured
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:  g.serviceID,
		TemplateID: g.templateID,
		UserID:     g.publicKey,
		TemplateParams: templateParams{
			FromName:  req.Fields.Name,
			FromEmail: req.Fields.Email,
			Phone:     req.Fields.Phone,
			Subject:   req.Subject,
			Message:   req.Message,
			Date:      req.Date,
		},
	})
	if err != nil {
		log.Printf("[notification][gateway] payload marshal failed err=%v", err)
		return err
	}

	log.Printf("[notification][gateway] send start payload_len=%d", len(body))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		log.Printf("[notification][gateway] send failed err=%v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// EmailJS answers plain text on rejection.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[notification][gateway] send rejected status=%d detail=%q", resp.StatusCode, detail)
		return fmt.Errorf("emailjs rejected the request: status=%d detail=%s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	log.Printf("[notification][gateway] send success")
	return nil
}

func isNotificationGatewayMockEnabled() bool {
	for _, key := range []string{"NOTIFICATION_GATEWAY_MOCK", "EMAILJS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
