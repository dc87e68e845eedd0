// Package payment confirms that a customer actually paid before an order is written.
package payment

import (
	"context"
	"errors"
)

var (
	ErrDeclined    = errors.New("payment was not successful")
	ErrUnavailable = errors.New("payment gateway is not configured")
)

type Request struct {
	Method    string
	Reference string
	// Amount in the smallest currency unit.
	Amount int64
	Email  string
}

type Result struct {
	Reference string
	Status    string
}

// Gateway confirms a payment the customer already made with the provider.
type Gateway interface {
	Confirm(ctx context.Context, req Request) (*Result, error)
}

// Unavailable rejects every non-cash payment. Used when no provider is configured.
type Unavailable struct{}

func (Unavailable) Confirm(context.Context, Request) (*Result, error) {
	return nil, ErrUnavailable
}

// Func adapts a plain function to Gateway.
type Func func(ctx context.Context, req Request) (*Result, error)

func (f Func) Confirm(ctx context.Context, req Request) (*Result, error) { return f(ctx, req) }
