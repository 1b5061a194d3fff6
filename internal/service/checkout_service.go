package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/alterach/toko-kopi-khaleed/internal/checkout"
	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/locale"
	"github.com/alterach/toko-kopi-khaleed/internal/store"
)

// Client-side timings for the hand-off, in milliseconds.
const (
	OpenLinkDelayMs     = 500
	SuccessRedirectMs   = 5000
	CheckoutSuccessPath = "/checkout/success"
)

const idempotentKeyTTL = 24 * time.Hour

type CheckoutResult struct {
	entity.OrderSummary
	TotalFormatted      string `json:"total_formatted"`
	Redirect            string `json:"redirect"`
	OpenAfterMs         int    `json:"open_after_ms"`
	RedirectHomeAfterMs int    `json:"redirect_home_after_ms"`
}

type CheckoutService struct {
	carts    *CartService
	composer *checkout.Composer
	rdb      *redis.Client
}

// NewCheckoutService creates a new instance of CheckoutService. A nil rdb turns
// off replay of repeated submissions.
func NewCheckoutService(carts *CartService, composer *checkout.Composer, rdb *redis.Client) *CheckoutService {
	return &CheckoutService{carts: carts, composer: composer, rdb: rdb}
}

func idempotentKey(sessionID, key string) string {
	return fmt.Sprintf("idempotent-key:%s:%s", sessionID, key)
}

// Checkout composes the WhatsApp order for the shopper's cart and empties the
// cart. A rejected request leaves the cart as it was. A request repeating an
// idempotent key gets the first result back.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, req entity.CheckoutRequest) (*CheckoutResult, error) {
	var result *CheckoutResult
	replayed := false
	err := s.carts.withCart(ctx, sessionID, func(cart *store.Cart) error {
		if prev := s.replay(ctx, sessionID, req.IdempotentKey); prev != nil {
			result, replayed = prev, true
			return nil
		}

		summary, err := s.composer.Compose(cart.Items(), req)
		if err != nil {
			return err
		}
		cart.Clear()
		result = &CheckoutResult{
			OrderSummary:        *summary,
			TotalFormatted:      locale.FormatRupiah(summary.Total),
			Redirect:            CheckoutSuccessPath,
			OpenAfterMs:         OpenLinkDelayMs,
			RedirectHomeAfterMs: SuccessRedirectMs,
		}
		return nil
	})
	if err != nil {
		if IsCheckoutRejection(err) {
			logger.Warn().Err(err).Msgf("Checkout rejected for session %s", sessionID)
		} else {
			logger.Error().Err(err).Msgf("Error checking out session %s", sessionID)
		}
		return nil, err
	}

	if replayed {
		logger.Info().Msgf("Order %s replayed for key %s", result.OrderRef, req.IdempotentKey)
		return result, nil
	}

	s.remember(ctx, sessionID, req.IdempotentKey, result)
	logger.Info().Msgf("Order %s handed off, total %d", result.OrderRef, result.Total)
	return result, nil
}

// replay returns the stored result for key, or nil when there is none.
func (s *CheckoutService) replay(ctx context.Context, sessionID, key string) *CheckoutResult {
	if s.rdb == nil || key == "" {
		return nil
	}

	data, err := s.rdb.Get(ctx, idempotentKey(sessionID, key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error reading idempotent key %s", key)
		}
		return nil
	}

	var result CheckoutResult
	if err := json.Unmarshal(data, &result); err != nil {
		logger.Error().Err(err).Msgf("Error unmarshalling result for idempotent key %s", key)
		return nil
	}
	return &result
}

func (s *CheckoutService) remember(ctx context.Context, sessionID, key string, result *CheckoutResult) {
	if s.rdb == nil || key == "" {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.Error().Err(err).Msg("Error marshalling checkout result")
		return
	}
	if err := s.rdb.Set(ctx, idempotentKey(sessionID, key), data, idempotentKeyTTL).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error storing idempotent key %s", key)
	}
}

// IsCheckoutRejection reports whether err is a form or cart problem rather than
// a backend failure.
func IsCheckoutRejection(err error) bool {
	return errors.Is(err, checkout.ErrNameRequired) ||
		errors.Is(err, checkout.ErrContactRequired) ||
		errors.Is(err, checkout.ErrEmptyCart) ||
		errors.Is(err, checkout.ErrInvalidOrderType)
}
