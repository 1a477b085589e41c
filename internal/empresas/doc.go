// Package empresas provides the client and data types for the company
// registry HTTP API.
//
// The API exposes a single paginated search endpoint. Queries carry a
// 1-based page number (pagina), a page size (tamanho) and zero or more
// filter parameters; responses arrive wrapped in an envelope whose
// message.resposta holds the page of records and message.total_registros
// the authoritative match count.
//
// The package is deliberately lenient about data quality: filter values go
// out exactly as entered, envelope fields missing from a response decode to
// their zero values, and status codes outside the documented set map to a
// "not informed" label instead of failing.
package empresas
