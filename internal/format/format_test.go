package format

import "testing"

func TestCurrency_ListContextAlwaysFormats(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{0.5, "R$ 0,50"},
	}
	for _, tc := range cases {
		if got := Currency(tc.amount); got != tc.want {
			t.Fatalf("Currency(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestCurrencyOrDash_DetailContextTreatsZeroAsAbsent(t *testing.T) {
	if got := CurrencyOrDash(0); got != Dash {
		t.Fatalf("CurrencyOrDash(0) = %q, want %q", got, Dash)
	}
	if got := CurrencyOrDash(1234.56); got != "R$ 1.234,56" {
		t.Fatalf("CurrencyOrDash(1234.56) = %q, want formatted currency", got)
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", Dash},
		{"   ", Dash},
		{"2005-11-03", "03/11/2005"},
		{"2005-11-03T12:30:00Z", "03/11/2005"},
		{"2005-11-03 12:30:00", "03/11/2005"},
		{"1131580800", "10/11/2005"},
		{"not-a-date", Dash},
	}
	for _, tc := range cases {
		if got := Date(tc.in); got != tc.want {
			t.Fatalf("Date(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCNPJ(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", Dash},
		{"12345678000199", "12.345.678/0001-99"},
		{"1234567800019", "1234567800019"},       // short: untouched
		{"123456780001999", "12.345.678/0001-99" + "9"}, // long: first 14 formatted
		{"12a45678000199", "12a45678000199"},     // non-numeric: untouched
	}
	for _, tc := range cases {
		if got := CNPJ(tc.in); got != tc.want {
			t.Fatalf("CNPJ(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		ddd, numero string
		want        string
	}{
		{"", "987654321", Dash},
		{"11", "", Dash},
		{"11", "nan", Dash},
		{"11", "98765432", "(11) 9876-5432"},
		// 9 digits: last 8 kept, leading digit dropped.
		{"11", "987654321", "(11) 8765-4321"},
		{"21", "1234", "(21) 1234"},
	}
	for _, tc := range cases {
		if got := Phone(tc.ddd, tc.numero); got != tc.want {
			t.Fatalf("Phone(%q, %q) = %q, want %q", tc.ddd, tc.numero, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"PADARIA DO ZÉ LTDA", "Padaria Do Zé Ltda"},
		{"empresa de pequeno porte", "Empresa De Pequeno Porte"},
		{"dois  espaços", "Dois  Espaços"},
	}
	for _, tc := range cases {
		if got := Capitalize(tc.in); got != tc.want {
			t.Fatalf("Capitalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := CapitalizeOrDash(""); got != Dash {
		t.Fatalf("CapitalizeOrDash(empty) = %q, want %q", got, Dash)
	}
	if got := CapitalizeOrDash("ACME"); got != "Acme" {
		t.Fatalf("CapitalizeOrDash(ACME) = %q, want Acme", got)
	}
}

func TestOrDash(t *testing.T) {
	if got := OrDash("  "); got != Dash {
		t.Fatalf("OrDash(blank) = %q, want %q", got, Dash)
	}
	if got := OrDash("SP"); got != "SP" {
		t.Fatalf("OrDash(SP) = %q, want SP", got)
	}
}
