package checkout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
)

type checkoutTestContext struct {
	composer *Composer
	items    []entity.CartItem
	req      entity.CheckoutRequest
	summary  *entity.OrderSummary
	err      error
}

func (c *checkoutTestContext) reset() {
	c.composer = NewComposer("", wib, fixedNow)
	c.items = nil
	c.req = entity.CheckoutRequest{}
	c.summary = nil
	c.err = nil
}

func (c *checkoutTestContext) aCartWithPriced(quantity int, name string, price int) error {
	c.items = append(c.items, entity.CartItem{
		ID:       fmt.Sprint(len(c.items) + 1),
		Name:     name,
		Price:    int64(price),
		Quantity: quantity,
	})
	return nil
}

func (c *checkoutTestContext) theCustomerWithWhatsApp(name, contact string) error {
	c.req.Name = name
	c.req.WhatsApp = contact
	return nil
}

func (c *checkoutTestContext) theOrderTypeIs(orderType string) error {
	c.req.OrderType = entity.OrderType(orderType)
	return nil
}

func (c *checkoutTestContext) theAddress(address string) error {
	c.req.Address = address
	return nil
}

func (c *checkoutTestContext) iCheckOut() error {
	c.summary, c.err = c.composer.Compose(c.items, c.req)
	return nil
}

func (c *checkoutTestContext) composed() error {
	if c.err != nil {
		return fmt.Errorf("expected an order, got error: %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theOrderTotalIs(total int) error {
	if err := c.composed(); err != nil {
		return err
	}
	if c.summary.Total != int64(total) {
		return fmt.Errorf("expected total %d, got %d", total, c.summary.Total)
	}
	return nil
}

func (c *checkoutTestContext) theMessageContains(text string) error {
	if err := c.composed(); err != nil {
		return err
	}
	if !strings.Contains(c.summary.Message, text) {
		return fmt.Errorf("expected message to contain %q, got:\n%s", text, c.summary.Message)
	}
	return nil
}

func (c *checkoutTestContext) theMessageDoesNotContain(text string) error {
	if err := c.composed(); err != nil {
		return err
	}
	if strings.Contains(c.summary.Message, text) {
		return fmt.Errorf("expected message not to contain %q", text)
	}
	return nil
}

func (c *checkoutTestContext) theLinkStartsWith(prefix string) error {
	if err := c.composed(); err != nil {
		return err
	}
	if !strings.HasPrefix(c.summary.WhatsAppURL, prefix) {
		return fmt.Errorf("expected link to start with %q, got %q", prefix, c.summary.WhatsAppURL)
	}
	return nil
}

func (c *checkoutTestContext) theOrderIsRejectedWith(reason string) error {
	if c.err == nil {
		return fmt.Errorf("expected rejection %q, got an order", reason)
	}
	if !strings.Contains(c.err.Error(), reason) {
		return fmt.Errorf("expected rejection %q, got %q", reason, c.err.Error())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a cart with (\d+) "([^"]*)" priced (\d+)$`, tc.aCartWithPriced)
	ctx.Step(`^the customer "([^"]*)" with WhatsApp "([^"]*)"$`, tc.theCustomerWithWhatsApp)
	ctx.Step(`^the order type is "([^"]*)"$`, tc.theOrderTypeIs)
	ctx.Step(`^the address "([^"]*)"$`, tc.theAddress)

	// When steps
	ctx.Step(`^I check out$`, tc.iCheckOut)

	// Then steps
	ctx.Step(`^the order total is (\d+)$`, tc.theOrderTotalIs)
	ctx.Step(`^the message contains "([^"]*)"$`, tc.theMessageContains)
	ctx.Step(`^the message does not contain "([^"]*)"$`, tc.theMessageDoesNotContain)
	ctx.Step(`^the link starts with "([^"]*)"$`, tc.theLinkStartsWith)
	ctx.Step(`^the order is rejected with "([^"]*)"$`, tc.theOrderIsRejectedWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
