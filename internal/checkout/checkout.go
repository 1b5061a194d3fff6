// Package checkout turns a cart and the customer form into a WhatsApp order message.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alterach/toko-kopi-khaleed/internal/entity"
	"github.com/alterach/toko-kopi-khaleed/internal/locale"
)

// DefaultWhatsAppNumber is the shop's order line.
const DefaultWhatsAppNumber = "6281234567890"

var (
	ErrNameRequired     = errors.New("customer name is required")
	ErrContactRequired  = errors.New("whatsapp number is required")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidOrderType = errors.New("order type must be dine-in or takeaway")
)

type Composer struct {
	number string
	loc    *time.Location
	now    func() time.Time
}

// NewComposer builds a composer sending to number. A nil loc means UTC and a nil
// now means time.Now.
func NewComposer(number string, loc *time.Location, now func() time.Time) *Composer {
	if number == "" {
		number = DefaultWhatsAppNumber
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Composer{number: number, loc: loc, now: now}
}

// Validate checks the customer form. Only name and contact are required; an empty
// order type means takeaway.
func Validate(req entity.CheckoutRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(req.WhatsApp) == "" {
		return ErrContactRequired
	}
	switch req.OrderType {
	case "", entity.OrderTypeDineIn, entity.OrderTypeTakeaway:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrderType, req.OrderType)
	}
}

// Compose validates the request and builds the order summary with its deep link.
// Nothing is sent; opening the link is up to the client.
func (c *Composer) Compose(items []entity.CartItem, req entity.CheckoutRequest) (*entity.OrderSummary, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.OrderType == "" {
		req.OrderType = entity.OrderTypeTakeaway
	}

	placedAt := c.now().In(c.loc)
	ref := OrderRef(placedAt)

	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}

	msg := buildMessage(ref, placedAt, items, total, req)
	return &entity.OrderSummary{
		OrderRef:    ref,
		PlacedAt:    placedAt,
		OrderType:   req.OrderType,
		Total:       total,
		Message:     msg,
		WhatsAppURL: DeepLink(c.number, msg),
	}, nil
}

// OrderRef derives the order reference from the placement time in milliseconds.
func OrderRef(t time.Time) string {
	return "ORD-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

func buildMessage(ref string, placedAt time.Time, items []entity.CartItem, total int64, req entity.CheckoutRequest) string {
	var b strings.Builder

	b.WriteString("*PESANAN BARU - KHALEED COFFEE*\n\n")
	fmt.Fprintf(&b, "*No. Pesanan:* %s\n", ref)
	fmt.Fprintf(&b, "*Tanggal:* %s\n", locale.LongDate(placedAt))
	fmt.Fprintf(&b, "*Jenis:* %s\n\n", req.OrderType.Label())

	b.WriteString("*DATA PELANGGAN*\n")
	fmt.Fprintf(&b, "Nama: %s\n", strings.TrimSpace(req.Name))
	fmt.Fprintf(&b, "WhatsApp: %s\n", strings.TrimSpace(req.WhatsApp))
	if address := strings.TrimSpace(req.Address); req.OrderType == entity.OrderTypeTakeaway && address != "" {
		fmt.Fprintf(&b, "Alamat: %s\n", address)
	}
	b.WriteString("\n")

	b.WriteString("*PESANAN:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.Name)
		if item.Notes != "" {
			fmt.Fprintf(&b, " (%s)", item.Notes)
		}
		fmt.Fprintf(&b, " - %s\n", locale.FormatRupiah(item.Subtotal()))
	}

	fmt.Fprintf(&b, "\n*TOTAL: %s*\n", locale.FormatRupiah(total))

	if notes := strings.TrimSpace(req.Notes); notes != "" {
		fmt.Fprintf(&b, "\n*CATATAN:* %s", notes)
	}

	b.WriteString("\n\nMohon konfirmasi pesanan ini. Terima kasih! 🙏")
	return b.String()
}

// DeepLink builds the wa.me link carrying message as pre-filled text.
func DeepLink(number, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, EncodeURIComponent(message))
}

// uriComponentUnescapes restores the marks encodeURIComponent leaves alone.
var uriComponentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers' encodeURIComponent does.
func EncodeURIComponent(s string) string {
	return uriComponentUnescapes.Replace(url.QueryEscape(s))
}
