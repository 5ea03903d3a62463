//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"bay-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const TestWebhookSecret = "whsec_e2e"

// FakeGateway records intents and refunds in memory. Intents are unpaid until MarkPaid.
type FakeGateway struct {
	mu      sync.Mutex
	seq     int
	intents map[string]uuid.UUID
	paid    map[string]bool
	refunds []string
}

func NewFakeGateway() *FakeGateway {
	g := &FakeGateway{}
	g.Reset()
	return g
}

func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents = map[string]uuid.UUID{}
	g.paid = map[string]bool{}
	g.refunds = nil
}

func (g *FakeGateway) CreateIntent(_ context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
	if req.AmountCents <= 0 {
		return &commands.PaymentIntent{}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("pi_e2e_%d", g.seq)
	secret := id + "_secret"
	g.intents[id] = req.BookingID
	return &commands.PaymentIntent{ID: id, ClientSecret: &secret, AmountCents: req.AmountCents}, nil
}

func (g *FakeGateway) Refund(_ context.Context, paymentID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refunds = append(g.refunds, paymentID)
	return nil
}

func (g *FakeGateway) PaymentSucceeded(_ context.Context, paymentID string) (bool, uuid.UUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	bookingID, ok := g.intents[paymentID]
	if !ok {
		return false, uuid.Nil, fmt.Errorf("no such payment intent: %s", paymentID)
	}
	return g.paid[paymentID], bookingID, nil
}

func (g *FakeGateway) MarkPaid(paymentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.paid[paymentID] = true
}

func (g *FakeGateway) Refunds() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.refunds...)
}
