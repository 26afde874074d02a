package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atorres/portfolio-api/internal/notify"
	"github.com/atorres/portfolio-api/internal/observability/metrics"
	"github.com/atorres/portfolio-api/pkg/logging"
)

// Limiter gates submissions per client key under a sliding-window policy.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Verifier checks a Turnstile token against the issuing service.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// SubmissionRequest is the untrusted JSON payload from the contact form.
// Company is the honeypot: hidden from humans, filled in by bots.
type SubmissionRequest struct {
	Name           string `json:"name"`
	Contact        string `json:"contact"`
	Message        string `json:"message"`
	Company        string `json:"company"`
	TurnstileToken string `json:"turnstileToken"`
}

type submissionResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Handler relays validated contact submissions to the email sender.
type Handler struct {
	toEmail  string
	sender   notify.EmailSender
	verifier Verifier
	limiter  Limiter
	metrics  *metrics.ContactMetrics
	logger   *logging.Logger
}

// NewHandler creates a contact submission handler. A nil limiter disables
// rate limiting; nil sender or verifier leaves the handler misconfigured
// and every submission is refused with a 500.
func NewHandler(toEmail string, sender notify.EmailSender, verifier Verifier, limiter Limiter, m *metrics.ContactMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		toEmail:  toEmail,
		sender:   sender,
		verifier: verifier,
		limiter:  limiter,
		metrics:  m,
		logger:   logger,
	}
}

func (h *Handler) configured() bool {
	return h.sender != nil && h.verifier != nil && h.toEmail != ""
}

// Submit handles POST /api/contact. Stages run in a fixed order and each
// short-circuits on failure: config check, rate limit, parse, honeypot,
// field presence, length bound, bot verification, delivery.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Never touch an external service when credentials are missing.
	if !h.configured() {
		h.logger.Error("contact: service not configured, refusing submission")
		h.reject(w, http.StatusInternalServerError, "server_misconfigured")
		return
	}

	ip := clientIP(r)

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(ctx, "contact:"+ip)
		switch {
		case err != nil:
			// Fail open: a down limiter must not take the contact path with it.
			h.logger.Warn("contact: rate limiter unavailable, failing open", "error", err)
		case !allowed:
			h.logger.Info("contact: rate limited", "ip", ip)
			h.reject(w, http.StatusTooManyRequests, "rate_limited")
			return
		}
	}

	var req SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.reject(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if strings.TrimSpace(req.Company) != "" {
		// Bot filled the hidden field. Answer with the success shape so
		// detection is indistinguishable from delivery; nothing is sent.
		h.logger.Info("contact: honeypot tripped, discarding", "ip", ip)
		h.metrics.ObserveSubmission("honeypot")
		h.accept(w)
		return
	}

	name := strings.TrimSpace(req.Name)
	contact := strings.TrimSpace(req.Contact)
	message := strings.TrimSpace(req.Message)
	token := strings.TrimSpace(req.TurnstileToken)

	if name == "" || contact == "" || message == "" || token == "" {
		h.reject(w, http.StatusBadRequest, "missing_fields")
		return
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		h.reject(w, http.StatusBadRequest, "too_long")
		return
	}

	start := time.Now()
	ok, err := h.verifier.Verify(ctx, token, ip)
	h.metrics.ObserveVerifyLatency(time.Since(start).Seconds())
	if err != nil {
		h.logger.Warn("contact: turnstile verification errored", "error", err, "ip", ip)
		ok = false
	}
	if !ok {
		h.reject(w, http.StatusForbidden, "turnstile_failed")
		return
	}

	msg := notify.EmailMessage{
		To:      h.toEmail,
		Subject: fmt.Sprintf("Portfolio contact from %s", name),
		Body:    fmt.Sprintf("Name: %s\nContact: %s\nIP: %s\n\n%s", name, contact, ip, message),
	}
	if IsEmailShaped(contact) {
		msg.ReplyTo = contact
	}

	if err := h.sender.Send(ctx, msg); err != nil {
		h.logger.Error("contact: delivery failed", "error", err, "ip", ip)
		h.metrics.ObserveDelivery("error")
		h.reject(w, http.StatusInternalServerError, "send_failed")
		return
	}

	h.logger.Info("contact: submission delivered", "ip", ip, "has_reply_to", msg.ReplyTo != "")
	h.metrics.ObserveDelivery("sent")
	h.metrics.ObserveSubmission("accepted")
	h.accept(w)
}

func (h *Handler) accept(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, submissionResponse{OK: true})
}

func (h *Handler) reject(w http.ResponseWriter, status int, reason string) {
	h.metrics.ObserveSubmission(reason)
	writeJSON(w, status, submissionResponse{OK: false, Error: reason})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// clientIP derives the rate-limit key from the first forwarded address.
// Without a proxy header the caller is keyed as "unknown".
func clientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff == "" {
		return "unknown"
	}
	first, _, _ := strings.Cut(xff, ",")
	if first = strings.TrimSpace(first); first == "" {
		return "unknown"
	}
	return first
}
