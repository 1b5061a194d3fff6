// Package locale formats money, dates and greetings the way the shop's Indonesian
// customers read them.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

var weekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatRupiah renders an amount without decimals, e.g. "Rp 104.000".
func FormatRupiah(amount int64) string {
	return "Rp " + printer.Sprintf("%d", amount)
}

// LongDate renders t as "Senin, 19 Oktober 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

type Greeting struct {
	Greeting string `json:"greeting"`
	IsNight  bool   `json:"is_night"`
}

// GreetingAt picks the time-of-day greeting for t's hour.
func GreetingAt(t time.Time) Greeting {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 11:
		return Greeting{Greeting: "Pagi"}
	case hour >= 11 && hour < 15:
		return Greeting{Greeting: "Siang"}
	case hour >= 15 && hour < 18:
		return Greeting{Greeting: "Sore"}
	default:
		return Greeting{Greeting: "Malam", IsNight: true}
	}
}
