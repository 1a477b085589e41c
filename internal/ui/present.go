package ui

import (
	"strings"

	"github.com/ncarv/balcao/internal/empresas"
	"github.com/ncarv/balcao/internal/format"
)

// DetailField is one label/value pair in the detail overlay. Values arrive
// fully formatted; the renderer only lays them out.
type DetailField struct {
	Label string
	Value string
}

// DetailSection groups related fields under a heading.
type DetailSection struct {
	Title  string
	Fields []DetailField
}

// PresentDetail builds the sectioned view-model for one company record.
// A nil record yields nil. Every value is total: absent data renders as the
// dash sentinel instead of disappearing, except the foreign-city pair which
// only exists for companies abroad.
func PresentDetail(e *empresas.Empresa) []DetailSection {
	if e == nil {
		return nil
	}

	sections := []DetailSection{
		{
			Title: "Informações Principais",
			Fields: []DetailField{
				{"Razão Social", format.CapitalizeOrDash(e.RazaoSocial)},
				{"Nome Fantasia", format.CapitalizeOrDash(e.NomeFantasia)},
				{"CNPJ", format.CNPJ(e.CNPJ)},
				{"CNPJ Base", format.OrDash(e.CNPJBase)},
				{"Tipo", e.Matriz.Label()},
				{"Situação Cadastral", e.SituacaoCadastral.Label()},
				{"Porte", format.CapitalizeOrDash(e.PorteEmpresa)},
				{"Natureza Jurídica", format.CapitalizeOrDash(e.NaturezaJuridica)},
				{"Capital Social", format.CurrencyOrDash(e.CapitalSocial)},
			},
		},
		{
			Title: "Atividades Econômicas",
			Fields: []DetailField{
				{"CNAE Principal", joinCNAE(e.CNAEPrincipal)},
				{"CNAEs Secundários", joinCNAE(e.CNAESecundaria)},
			},
		},
		{
			Title: "Datas",
			Fields: []DetailField{
				{"Início de Atividade", format.Date(e.DataInicioAtividade)},
				{"Situação Cadastral", format.Date(e.DataSituacaoCadastral)},
				{"Situação Especial", format.Date(e.DataSituacaoEspecial)},
			},
		},
		{
			Title: "Contato",
			Fields: []DetailField{
				{"E-mail", format.OrDash(e.CorreioEletronico)},
				{"Telefone 1", format.Phone(e.DDD1, e.Telefone1)},
				{"Telefone 2", format.Phone(e.DDD2, e.Telefone2)},
				{"Fax", format.Phone(e.DDDFax, e.Fax)},
			},
		},
	}

	local := DetailSection{
		Title: "Localização",
		Fields: []DetailField{
			{"Endereço", composeEndereco(e)},
			{"Bairro", format.CapitalizeOrDash(e.Bairro)},
			{"Município", format.CapitalizeOrDash(e.Municipio)},
			{"UF", format.OrDash(e.UF)},
			{"CEP", format.OrDash(e.CEP)},
		},
	}
	// Foreign-company fields only appear when the registry filled them in.
	if strings.TrimSpace(e.NomeCidadeExterior) != "" {
		local.Fields = append(local.Fields, DetailField{"Cidade no Exterior", format.Capitalize(e.NomeCidadeExterior)})
	}
	if strings.TrimSpace(e.Pais) != "" {
		local.Fields = append(local.Fields, DetailField{"País", format.Capitalize(e.Pais)})
	}
	sections = append(sections, local)

	return sections
}

// composeEndereco joins logradouro, número and complemento into one line,
// skipping whichever parts are missing.
func composeEndereco(e *empresas.Empresa) string {
	var parts []string
	for _, p := range []string{e.Logradouro, e.Numero, e.Complemento} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return format.Dash
	}
	return format.Capitalize(strings.Join(parts, ", "))
}

// joinCNAE renders an activity list as the registry sent it, dash when there
// is none.
func joinCNAE(entries []string) string {
	var kept []string
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		return format.Dash
	}
	return strings.Join(kept, ", ")
}
