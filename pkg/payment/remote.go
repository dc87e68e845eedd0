package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sendgrid/rest"
)

// Remote verifies a transaction reference against the provider's
// GET {base}/transaction/verify/{reference} endpoint.
type Remote struct {
	baseURL string
	secret  string
	client  *rest.Client
}

func NewRemote(baseURL, secret string) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		client:  &rest.Client{HTTPClient: &http.Client{Timeout: 15 * time.Second}},
	}
}

type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

func (g *Remote) Confirm(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Reference) == "" {
		return nil, fmt.Errorf("%w: missing reference", ErrDeclined)
	}

	res, err := g.client.SendWithContext(ctx, rest.Request{
		Method:  rest.Get,
		BaseURL: g.baseURL + "/transaction/verify/" + url.PathEscape(req.Reference),
		Headers: map[string]string{
			"Authorization": "Bearer " + g.secret,
			"Accept":        "application/json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider answered %d", ErrDeclined, res.StatusCode)
	}

	var body verifyResponse
	if err := json.Unmarshal([]byte(res.Body), &body); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	if !body.Status || body.Data.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrDeclined, body.Data.Status)
	}
	// an underpaid transaction is not a confirmation for this order
	if req.Amount > 0 && body.Data.Amount < req.Amount {
		return nil, fmt.Errorf("%w: paid %d of %d", ErrDeclined, body.Data.Amount, req.Amount)
	}

	return &Result{Reference: body.Data.Reference, Status: body.Data.Status}, nil
}
