// Package signature checks recipient signatures against the file service
// that stores the signed delivery slips.
package signature

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
	"deliverytracking/internal/core/ports"
	"deliverytracking/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultTimeout = 5 * time.Second

// Config selects the file service. An empty BaseURL disables verification.
type Config struct {
	BaseURL string        `koanf:"baseurl" validate:"omitempty,url"`
	Timeout time.Duration `koanf:"timeout"`
}

// HTTPVerifier asks the file service whether a signature file exists.
type HTTPVerifier struct {
	client *resty.Client
	logger *slog.Logger
}

// NewVerifier returns an HTTPVerifier, or a NoopVerifier when cfg.BaseURL
// is empty.
func NewVerifier(cfg Config, logger *slog.Logger) ports.SignatureVerifier {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return NoopVerifier{}
	}
	return NewHTTPVerifier(cfg, logger)
}

func NewHTTPVerifier(cfg Config, logger *slog.Logger) *HTTPVerifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPVerifier{
		client: client,
		logger: logger.With("component", "signature_verifier"),
	}
}

// Verify returns nil when GET /files/{id} answers 2xx. A 404 means the
// signature reference is wrong and is reported as *errs.ValueIsInvalidError;
// any other outcome is a transport failure.
func (v *HTTPVerifier) Verify(ctx context.Context, signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("signature", err)
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetPathParam("id", signatureID.String()).
		Get("/files/{id}")
	if err != nil {
		return errors.Wrap(err, "verify signature")
	}

	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusNotFound:
		v.logger.InfoContext(ctx, "signature not found", "signature_id", signatureID.String())
		return errs.NewValueIsInvalidErrorWithCause(
			"signature",
			errors.Errorf("file %s does not exist", signatureID.String()),
		)
	default:
		return errors.Errorf("verify signature: file service answered %d", resp.StatusCode())
	}
}

// NoopVerifier accepts every well-formed signature reference.
type NoopVerifier struct{}

func (NoopVerifier) Verify(_ context.Context, signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("signature", err)
	}
	return nil
}
