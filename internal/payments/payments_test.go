package payments

import (
	"context"
	"testing"

	"clienthub/internal/config"
	"clienthub/internal/platform"
	platformMocks "clienthub/internal/platform/mocks"

	"github.com/stretchr/testify/assert"
)

func testConfig() config.FunctionsConfig {
	return config.FunctionsConfig{
		EukapayInvoicesFn: "fn-euka-list",
		EukapayInvoiceFn:  "fn-euka-get",
		StripeLinksFn:     "fn-stripe-links",
		StripePaymentFn:   "fn-stripe-get",
	}
}

func TestClient_EukapayInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mFns := new(platformMocks.MockFunctions)
		mFns.On("Execute", ctx, "fn-euka-get", "INV-1").
			Return(&platform.Execution{
				ResponseStatusCode: 200,
				ResponseBody:       `{"code":"INV-1","status":"Paid"}`,
			}, nil)

		c := NewClient(mFns, testConfig())
		inv, err := c.EukapayInvoice(ctx, "INV-1")

		assert.NoError(t, err)
		assert.Equal(t, "Paid", inv["status"])
		mFns.AssertExpectations(t)
	})

	t.Run("non-2xx status is a failure", func(t *testing.T) {
		mFns := new(platformMocks.MockFunctions)
		mFns.On("Execute", ctx, "fn-euka-get", "INV-404").
			Return(&platform.Execution{
				ResponseStatusCode: 404,
				ResponseBody:       "not found",
			}, nil)

		c := NewClient(mFns, testConfig())
		inv, err := c.EukapayInvoice(ctx, "INV-404")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
		assert.Nil(t, inv)
	})
}

func TestClient_StripePaymentLinks(t *testing.T) {
	ctx := context.Background()

	mFns := new(platformMocks.MockFunctions)
	mFns.On("Execute", ctx, "fn-stripe-links", "").
		Return(&platform.Execution{
			ResponseStatusCode: 200,
			ResponseBody:       `[{"id":"pl_1"},{"id":"pl_2"}]`,
		}, nil)

	c := NewClient(mFns, testConfig())
	links, err := c.StripePaymentLinks(ctx)

	assert.NoError(t, err)
	assert.Len(t, links, 2)
	mFns.AssertExpectations(t)
}
