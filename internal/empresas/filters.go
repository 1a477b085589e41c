package empresas

import (
	"net/url"
	"strconv"
)

// Filter field names, matching the registry's query parameters.
const (
	FieldNome        = "nome"
	FieldCNPJ        = "cnpj"
	FieldMatriz      = "matriz"
	FieldCEP         = "cep"
	FieldUF          = "uf"
	FieldCapitalMin  = "capital_min"
	FieldCapitalMax  = "capital_max"
	FieldPorte       = "porte_empresa"
	FieldAberturaDe  = "abertura_de"
	FieldAberturaAte = "abertura_ate"
)

// FieldNames lists every filter field in form order.
var FieldNames = []string{
	FieldNome,
	FieldCNPJ,
	FieldMatriz,
	FieldPorte,
	FieldCEP,
	FieldUF,
	FieldCapitalMin,
	FieldCapitalMax,
	FieldAberturaDe,
	FieldAberturaAte,
}

// Filters holds the user-entered search criteria. All fields are optional;
// empty fields are omitted from the outgoing query. Values are kept exactly
// as entered — no trimming or coercion happens here, and contradictory
// ranges (capital_min > capital_max) are sent as-is and simply match
// nothing on the server.
type Filters struct {
	Nome        string
	CNPJ        string
	Matriz      string
	CEP         string
	UF          string
	CapitalMin  string
	CapitalMax  string
	Porte       string
	AberturaDe  string
	AberturaAte string
}

// Set replaces one field's value by its wire name. Unknown names are
// rejected so a typo cannot silently drop a criterion.
func (f *Filters) Set(name, value string) bool {
	switch name {
	case FieldNome:
		f.Nome = value
	case FieldCNPJ:
		f.CNPJ = value
	case FieldMatriz:
		f.Matriz = value
	case FieldCEP:
		f.CEP = value
	case FieldUF:
		f.UF = value
	case FieldCapitalMin:
		f.CapitalMin = value
	case FieldCapitalMax:
		f.CapitalMax = value
	case FieldPorte:
		f.Porte = value
	case FieldAberturaDe:
		f.AberturaDe = value
	case FieldAberturaAte:
		f.AberturaAte = value
	default:
		return false
	}
	return true
}

// Get returns one field's value by its wire name.
func (f Filters) Get(name string) string {
	switch name {
	case FieldNome:
		return f.Nome
	case FieldCNPJ:
		return f.CNPJ
	case FieldMatriz:
		return f.Matriz
	case FieldCEP:
		return f.CEP
	case FieldUF:
		return f.UF
	case FieldCapitalMin:
		return f.CapitalMin
	case FieldCapitalMax:
		return f.CapitalMax
	case FieldPorte:
		return f.Porte
	case FieldAberturaDe:
		return f.AberturaDe
	case FieldAberturaAte:
		return f.AberturaAte
	}
	return ""
}

// Reset restores every field to its empty default in one step.
func (f *Filters) Reset() {
	*f = Filters{}
}

// IsZero reports whether no criteria are set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// SearchQuery configures one search request: a snapshot of the filter
// criteria plus the 0-based page index and page size.
type SearchQuery struct {
	Filters Filters
	Page    int
	Size    int
}

// Values encodes the query as registry parameters. The wire protocol is
// 1-based, so the 0-based page index is translated here and nowhere else.
// Empty filter fields are omitted entirely, never sent as empty strings.
func (q SearchQuery) Values() url.Values {
	values := url.Values{}
	values.Set("pagina", strconv.Itoa(q.Page+1))
	values.Set("tamanho", strconv.Itoa(q.Size))
	for _, name := range FieldNames {
		if value := q.Filters.Get(name); value != "" {
			values.Set(name, value)
		}
	}
	return values
}
