// Package payment is the hosted payment page the checkout hands unpaid orders to.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kirinyoku/adslot-go/internal/domain"
	"github.com/kirinyoku/adslot-go/internal/repository/postgres"
)

const (
	HandlePrefix = "pi_"

	EventPaymentSucceeded = "payment.succeeded"

	SignatureHeader = "X-Signature"
)

var (
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrBadSignature   = errors.New("invalid webhook signature")
	ErrMalformedEvent = errors.New("malformed webhook event")
)

type IntentStore interface {
	InsertIntent(ctx context.Context, db postgres.DB, handle string, amountCents int64, metadata []byte) error
	MarkIntent(ctx context.Context, db postgres.DB, handle, status string) error
}

// Event is the body of a provider webhook.
type Event struct {
	Type          string `json:"type"`
	PaymentHandle string `json:"payment_handle"`
}

type HostedGateway struct {
	store   IntentStore
	baseURL string
	secret  []byte
}

func NewHostedGateway(store IntentStore, baseURL, secret string) *HostedGateway {
	return &HostedGateway{
		store:   store,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  []byte(secret),
	}
}

// CreatePaymentIntent registers an amount to collect.
//
// Parameters:
//   - ctx: request-scoped context.
//   - amountCents: amount due, strictly positive.
//   - metadata: free-form labels stored with the intent (checkout id, ad id).
//
// Returns:
//   - domain.PaymentIntent: the handle and the hosted page URL.
//   - error: payment.ErrInvalidAmount, or a storage error.
func (g *HostedGateway) CreatePaymentIntent(
	ctx context.Context,
	amountCents int64,
	metadata map[string]string,
) (domain.PaymentIntent, error) {
	const op = "payment.HostedGateway.CreatePaymentIntent"

	if amountCents <= 0 {
		return domain.PaymentIntent{}, fmt.Errorf("%s:%w", op, ErrInvalidAmount)
	}

	meta, err := json.Marshal(metadata)
	if err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("%s:%w", op, err)
	}

	handle := HandlePrefix + uuid.NewString()

	if err := g.store.InsertIntent(ctx, nil, handle, amountCents, meta); err != nil {
		return domain.PaymentIntent{}, fmt.Errorf("%s:%w", op, err)
	}

	return domain.PaymentIntent{
		Handle: handle,
		URL:    g.baseURL + "/pay/" + handle,
	}, nil
}

// MarkSucceeded records the provider confirmation inside the caller's transaction.
func (g *HostedGateway) MarkSucceeded(ctx context.Context, db postgres.DB, handle string) error {
	const op = "payment.HostedGateway.MarkSucceeded"

	if err := g.store.MarkIntent(ctx, db, handle, postgres.IntentSucceeded); err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

func (g *HostedGateway) Sign(body []byte) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *HostedGateway) VerifySignature(body []byte, signature string) bool {
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, g.secret)
	mac.Write(body)

	return hmac.Equal(got, mac.Sum(nil))
}

// ParseEvent authenticates and decodes a webhook body.
//
// Returns:
//   - Event: the decoded event; callers ignore types they do not handle.
//   - error: payment.ErrBadSignature or payment.ErrMalformedEvent.
func (g *HostedGateway) ParseEvent(body []byte, signature string) (Event, error) {
	const op = "payment.HostedGateway.ParseEvent"

	if !g.VerifySignature(body, signature) {
		return Event{}, fmt.Errorf("%s:%w", op, ErrBadSignature)
	}

	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, fmt.Errorf("%s:%w", op, errors.Join(ErrMalformedEvent, err))
	}

	if ev.Type == "" {
		return Event{}, fmt.Errorf("%s:%w", op, ErrMalformedEvent)
	}

	if ev.Type == EventPaymentSucceeded && ev.PaymentHandle == "" {
		return Event{}, fmt.Errorf("%s:%w", op, ErrMalformedEvent)
	}

	return ev, nil
}
