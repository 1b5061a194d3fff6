package consumer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// CacheInvalidator drops cached catalog entries for a product.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, productID int) error
}

var ErrMalformedKey = errors.New("malformed product event key")

type Consumer struct {
	reader  MessageReader
	catalog CacheInvalidator
}

func NewConsumer(reader MessageReader, catalog CacheInvalidator) *Consumer {
	return &Consumer{reader: reader, catalog: catalog}
}

// Start listens for catalog change events until ctx is cancelled, then closes the reader.
func (c *Consumer) Start(ctx context.Context) {
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Error().Msgf("Error closing reader: %v", err)
		}
	}()

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Msg("Product consumer stopped")
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		if err := c.processMessage(ctx, msg); err != nil {
			log.Error().Msgf("Error processing message %q: %v", string(msg.Key), err)
		}
	}
}

// processMessage handles one catalog change. Every event type drops the cached
// list and the product entry, so the next read goes to the database.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) error {
	// key -> "product.created.productID", "product.updated.productID", "product.deleted.productID"
	eventType, productID, err := parseKey(string(msg.Key))
	if err != nil {
		return err
	}

	log.Info().Msgf("Product %d %s, invalidating cache", productID, eventType)
	return c.catalog.Invalidate(ctx, productID)
}

func parseKey(key string) (string, int, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != "product" || parts[1] == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	return parts[1], id, nil
}
