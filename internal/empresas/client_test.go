package empresas

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), defaultBaseURL)
	}

	u, err = parseBaseURL("10.0.0.5:8000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "10.0.0.5:8000" {
		t.Fatalf("base = %q, want http scheme with host preserved", u.String())
	}

	u, err = parseBaseURL("https://example.com/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_SearchEncodesQueryAndDecodesEnvelope(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotPath, gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"message": {
				"resposta": [
					{"id": "1", "cnpj": "12345678000199", "razao_social_nome_empresarial": "ACME LTDA", "situacao_cadastral": "2"},
					{"id": "2", "cnpj": "98765432000155", "razao_social_nome_empresarial": "BETA SA"}
				],
				"total_registros": 37
			}
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	query := SearchQuery{
		Filters: Filters{Nome: "acme", UF: "SP", CapitalMin: "1000"},
		Page:    2,
		Size:    20,
	}
	result, err := c.Search(ctx, query)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if gotPath != searchPath {
		t.Fatalf("path = %q, want %q", gotPath, searchPath)
	}
	if gotQuery.Get("pagina") != "3" ||
		gotQuery.Get("tamanho") != "20" ||
		gotQuery.Get("nome") != "acme" ||
		gotQuery.Get("uf") != "SP" ||
		gotQuery.Get("capital_min") != "1000" {
		t.Fatalf("query = %v, want params encoded with 1-based pagina", gotQuery)
	}
	if _, present := gotQuery["cnpj"]; present {
		t.Fatalf("empty cnpj filter sent: %v", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "balcao/") {
		t.Fatalf("User-Agent = %q, want balcao/*", gotUserAgent)
	}

	if result.Total != 37 {
		t.Fatalf("Total = %d, want 37", result.Total)
	}
	if len(result.Empresas) != 2 || result.Empresas[0].RazaoSocial != "ACME LTDA" {
		t.Fatalf("Empresas = %#v, want 2 decoded records", result.Empresas)
	}
	if result.Empresas[0].SituacaoCadastral != SituacaoAtiva {
		t.Fatalf("SituacaoCadastral = %q, want %q", result.Empresas[0].SituacaoCadastral, SituacaoAtiva)
	}
}

func TestClient_SearchMissingEnvelopeFieldsDegradeGracefully(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": {}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	result, err := c.Search(context.Background(), SearchQuery{Size: 10})
	if err != nil {
		t.Fatalf("Search returned error: %v, want graceful empty result", err)
	}
	if len(result.Empresas) != 0 || result.Total != 0 {
		t.Fatalf("result = %#v, want empty page with zero total", result)
	}
}

func TestClient_SearchHTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("pagina") {
		case "1":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Search(context.Background(), SearchQuery{Page: 0, Size: 10})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Search error = %v, want status 500 error", err)
	}

	_, err = c.Search(context.Background(), SearchQuery{Page: 1, Size: 10})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Search error = %v, want decode response error", err)
	}
}
