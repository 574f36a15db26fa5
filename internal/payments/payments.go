package payments

import (
	"context"
	"encoding/json"
	"fmt"

	"clienthub/internal/config"
	"clienthub/internal/platform"
)

// Client exposes typed accessors for the two payment providers, both reached
// exclusively through the hosted function-execution service. Unlike most of
// the repository surface, these calls propagate failures to the caller; the
// invoice enrichment helper decides per field what to do with them.
type Client struct {
	fns platform.Functions
	cfg config.FunctionsConfig
}

// NewClient creates a payments client over the function-execution service.
func NewClient(fns platform.Functions, cfg config.FunctionsConfig) *Client {
	return &Client{fns: fns, cfg: cfg}
}

// EukapayInvoices fetches all invoices known to the Eukapay provider.
func (c *Client) EukapayInvoices(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.execute(ctx, c.cfg.EukapayInvoicesFn, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EukapayInvoice fetches a single Eukapay invoice by its opaque code.
func (c *Client) EukapayInvoice(ctx context.Context, code string) (map[string]any, error) {
	var out map[string]any
	if err := c.execute(ctx, c.cfg.EukapayInvoiceFn, code, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StripePaymentLinks fetches all payment links known to the Stripe provider.
func (c *Client) StripePaymentLinks(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := c.execute(ctx, c.cfg.StripeLinksFn, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StripePayment fetches a single Stripe payment by its opaque id.
func (c *Client) StripePayment(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	if err := c.execute(ctx, c.cfg.StripePaymentFn, id, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) execute(ctx context.Context, functionID, payload string, out any) error {
	exec, err := c.fns.Execute(ctx, functionID, payload)
	if err != nil {
		return err
	}
	if exec.ResponseStatusCode < 200 || exec.ResponseStatusCode >= 300 {
		return fmt.Errorf("function execution failed with status %d: %s",
			exec.ResponseStatusCode, exec.ResponseBody)
	}
	if err := json.Unmarshal([]byte(exec.ResponseBody), out); err != nil {
		return fmt.Errorf("failed to decode function %s response: %w", functionID, err)
	}
	return nil
}
