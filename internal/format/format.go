// Package format renders raw registry field values as display strings.
//
// Every function here is total: malformed or missing input degrades to the
// Dash sentinel (or an empty string in list context) instead of failing.
// List and detail contexts intentionally disagree about falsy values — a
// zero capital is a real amount in the results table but reads as absent in
// the detail overlay.
package format

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Dash is the sentinel shown for missing or unusable values.
const Dash = "-"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Currency formats an amount as Brazilian reais. List context: zero is a
// valid amount and renders as currency.
func Currency(amount float64) string {
	return "R$ " + ptBR.Sprint(number.Decimal(amount, number.Scale(2)))
}

// CurrencyOrDash formats an amount for detail context, where zero reads as
// absent.
func CurrencyOrDash(amount float64) string {
	if amount == 0 {
		return Dash
	}
	return Currency(amount)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date renders a date value as dd/mm/yyyy. Accepts ISO 8601 strings or unix
// epoch seconds/milliseconds; anything unparseable renders as Dash.
func Date(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Dash
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("02/01/2006")
		}
	}
	if epoch, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if len(trimmed) > 10 {
			return time.UnixMilli(epoch).UTC().Format("02/01/2006")
		}
		return time.Unix(epoch, 0).UTC().Format("02/01/2006")
	}
	return Dash
}

// CNPJ inserts the standard 2.3.3/4-2 punctuation into a 14-digit tax id.
// Shorter or non-numeric input passes through untouched; longer input has
// the first 14 digits formatted and the rest appended. Lenient on purpose:
// validation is not this layer's job.
func CNPJ(value string) string {
	if value == "" {
		return Dash
	}
	if len(value) < 14 || !allDigits(value[:14]) {
		return value
	}
	return value[0:2] + "." + value[2:5] + "." + value[5:8] + "/" + value[8:12] + "-" + value[12:14] + value[14:]
}

// Phone renders an area code and number as "(ddd) xxxx-xxxx" using the
// number's last 8 digits. A longer number loses its leading digits — the
// fixed-width split is intentional. The literal "nan" appears in the data
// set for missing numbers and reads as absent.
func Phone(ddd, numero string) string {
	if ddd == "" || numero == "" || numero == "nan" {
		return Dash
	}
	if len(numero) > 8 {
		numero = numero[len(numero)-8:]
	}
	if len(numero) > 4 {
		numero = numero[:len(numero)-4] + "-" + numero[len(numero)-4:]
	}
	return "(" + ddd + ") " + numero
}

// Capitalize lower-cases the text and upper-cases the first letter of each
// space-separated token. List context: empty input stays empty.
func Capitalize(value string) string {
	if value == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(value), " ")
	for i, word := range words {
		runes := []rune(word)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// CapitalizeOrDash is Capitalize for detail context, where empty input
// reads as absent.
func CapitalizeOrDash(value string) string {
	if value == "" {
		return Dash
	}
	return Capitalize(value)
}

// OrDash substitutes Dash for empty values.
func OrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return Dash
	}
	return value
}

func allDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
