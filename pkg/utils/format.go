package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var monthNames = map[string]map[time.Month]string{
	"en": {
		1: "January", 2: "February", 3: "March", 4: "April",
		5: "May", 6: "June", 7: "July", 8: "August",
		9: "September", 10: "October", 11: "November", 12: "December",
	},
	"id": {
		1: "Januari", 2: "Februari", 3: "Maret", 4: "April",
		5: "Mei", 6: "Juni", 7: "Juli", 8: "Agustus",
		9: "September", 10: "Oktober", 11: "November", 12: "Desember",
	},
}

// Formatter renders amounts and dates for people, in one locale
type Formatter struct {
	locale  string
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter for "en" or "id" using symbol as the currency prefix
func NewFormatter(locale, symbol string) *Formatter {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if _, ok := monthNames[locale]; !ok {
		locale = "en"
	}
	return &Formatter{
		locale:  locale,
		symbol:  symbol,
		printer: message.NewPrinter(language.Make(locale)),
	}
}

// Currency formats amount with locale grouping, at most two fraction digits
func (f *Formatter) Currency(amount decimal.Decimal) string {
	n := number.Decimal(amount.Round(2).InexactFloat64(), number.MaxFractionDigits(2))
	formatted := f.printer.Sprint(n)
	if f.symbol == "" {
		return formatted
	}
	return f.symbol + " " + formatted
}

// Date formats a date as "2 January 2026" with localized month names
func (f *Formatter) Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), monthNames[f.locale][t.Month()], t.Year())
}

// DateOnly truncates t to the calendar day it falls on in loc, returned as UTC midnight
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the signed number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	a = DateOnly(a, nil)
	b = DateOnly(b, nil)
	return int(b.Sub(a).Hours() / 24)
}
