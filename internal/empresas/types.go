package empresas

import "strings"

// SituacaoCadastral is the registration status code assigned by the registry.
// The code set is closed; anything outside it maps to the "not informed"
// label rather than failing.
type SituacaoCadastral string

const (
	SituacaoNula     SituacaoCadastral = "1"
	SituacaoAtiva    SituacaoCadastral = "2"
	SituacaoSuspensa SituacaoCadastral = "3"
	SituacaoInapta   SituacaoCadastral = "4"
	SituacaoBaixada  SituacaoCadastral = "8"
)

// Label returns the display label for the status code.
func (s SituacaoCadastral) Label() string {
	switch s {
	case SituacaoNula:
		return "NULA"
	case SituacaoAtiva:
		return "ATIVA"
	case SituacaoSuspensa:
		return "SUSPENSA"
	case SituacaoInapta:
		return "INAPTA"
	case SituacaoBaixada:
		return "BAIXADA"
	default:
		return "NÃO INFORMADA"
	}
}

// IdentificadorMatrizFilial distinguishes a headquarters record from a
// branch record.
type IdentificadorMatrizFilial string

// MatrizCode marks a headquarters record; every other value is a branch.
const MatrizCode IdentificadorMatrizFilial = "1"

// Label returns "Matriz" for headquarters and "Filial" otherwise.
func (i IdentificadorMatrizFilial) Label() string {
	if i == MatrizCode {
		return "Matriz"
	}
	return "Filial"
}

// Empresa mirrors one company record from the registry API. Field names
// follow the wire schema; all of them are optional on the wire.
type Empresa struct {
	ID                    string                    `json:"id"`
	CNPJ                  string                    `json:"cnpj"`
	CNPJBase              string                    `json:"cnpj_base"`
	RazaoSocial           string                    `json:"razao_social_nome_empresarial"`
	NomeFantasia          string                    `json:"nome_fantasia"`
	Matriz                IdentificadorMatrizFilial `json:"identificador_matriz_filial"`
	PorteEmpresa          string                    `json:"porte_empresa"`
	CapitalSocial         float64                   `json:"capital_social"`
	NaturezaJuridica      string                    `json:"natureza_juridica"`
	CNAEPrincipal         []string                  `json:"cnae_fiscal_principal"`
	CNAESecundaria        []string                  `json:"cnae_fiscal_secundaria"`
	SituacaoCadastral     SituacaoCadastral         `json:"situacao_cadastral"`
	DataSituacaoCadastral string                    `json:"data_situacao_cadastral"`
	DataSituacaoEspecial  string                    `json:"data_da_situacao_especial"`
	DataInicioAtividade   string                    `json:"data_de_inicio_atividade"`
	CEP                   string                    `json:"cep"`
	UF                    string                    `json:"uf"`
	Logradouro            string                    `json:"logradouro"`
	Numero                string                    `json:"numero"`
	Complemento           string                    `json:"complemento"`
	Bairro                string                    `json:"bairro"`
	Municipio             string                    `json:"municipio"`
	DDD1                  string                    `json:"ddd1"`
	Telefone1             string                    `json:"telefone1"`
	DDD2                  string                    `json:"ddd2"`
	Telefone2             string                    `json:"telefone2"`
	DDDFax                string                    `json:"ddd_do_fax"`
	Fax                   string                    `json:"fax"`
	CorreioEletronico     string                    `json:"correio_eletronico"`
	NomeCidadeExterior    string                    `json:"nome_da_cidade_no_exterior"`
	Pais                  string                    `json:"pais"`
}

// Key returns the identity of the record within a result page: the server
// assigned id when present, otherwise the CNPJ.
func (e Empresa) Key() string {
	if strings.TrimSpace(e.ID) != "" {
		return e.ID
	}
	return e.CNPJ
}

// SearchResult is one page of records plus the authoritative total count.
type SearchResult struct {
	Empresas []Empresa
	Total    int
}

// searchEnvelope mirrors the registry's response envelope. All fields are
// optional; a missing resposta or total_registros decodes to an empty page.
type searchEnvelope struct {
	Message struct {
		Resposta       []Empresa `json:"resposta"`
		TotalRegistros int       `json:"total_registros"`
	} `json:"message"`
}
