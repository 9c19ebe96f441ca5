package adapthttp_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adapthttp "github.com/Tarsisbs/Backend-APP-TCC/internal/adapter/http"
	"github.com/Tarsisbs/Backend-APP-TCC/internal/adapter/memory"
	"github.com/Tarsisbs/Backend-APP-TCC/internal/app"
	"github.com/Tarsisbs/Backend-APP-TCC/internal/domain"
)

// newTestServer wires the full stack over the in-memory adapter.
func newTestServer() (http.Handler, *memory.DB) {
	store := memory.New()
	tokens := app.NewTokenCodec("test-secret")
	auth := app.NewAuthService(store, tokens)
	listings := app.NewListingService(store)
	h := adapthttp.New(auth, listings, tokens, "test", nil).Handler()
	return h, store
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestRootReportsEnv(t *testing.T) {
	h, _ := newTestServer()

	w := doJSON(t, h, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		OK  bool   `json:"ok"`
		Env string `json:"env"`
	}
	decodeBody(t, w, &body)
	if !body.OK || body.Env != "test" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	h, _ := newTestServer()
	if w := doJSON(t, h, http.MethodGet, "/nope", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	h, _ := newTestServer()

	w := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"nome":  "Ana",
		"email": "ana@x.com",
		"senha": "s3nha",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "ana@x.com",
		"senha": "s3nha",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Nome    string `json:"nome"`
	}
	decodeBody(t, w, &login)
	if !login.Success || login.Token == "" || login.Nome != "Ana" {
		t.Fatalf("unexpected login body %+v", login)
	}

	w = doJSON(t, h, http.MethodGet, "/usuarios/me", "Bearer "+login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var profile struct {
		ID    int64  `json:"id"`
		Nome  string `json:"nome"`
		Email string `json:"email"`
	}
	decodeBody(t, w, &profile)
	if profile.ID == 0 || profile.Nome != "Ana" || profile.Email != "ana@x.com" {
		t.Errorf("unexpected profile %+v", profile)
	}

	// The scheme label is not checked; any two-part header works.
	if w := doJSON(t, h, http.MethodGet, "/perfil", "Token "+login.Token, nil); w.Code != http.StatusOK {
		t.Errorf("perfil with alternate scheme: expected 200, got %d", w.Code)
	}
}

func TestMeEchoesClaim(t *testing.T) {
	h, _ := newTestServer()

	doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"nome": "Ana", "email": "ana@x.com", "senha": "s3nha",
	})
	w := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "ana@x.com", "senha": "s3nha",
	})

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)

	w = doJSON(t, h, http.MethodGet, "/me", "Bearer "+login.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		User domain.Claim `json:"user"`
	}
	decodeBody(t, w, &body)
	if body.User.ID == 0 || body.User.Name != "Ana" {
		t.Errorf("unexpected claim %+v", body.User)
	}
}

func TestRegisterValidation(t *testing.T) {
	h, _ := newTestServer()

	w := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"nome": "Ana", "email": "", "senha": "s3nha",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing email, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h, _ := newTestServer()

	body := map[string]string{"nome": "Ana", "email": "ana@x.com", "senha": "s3nha"}
	if w := doJSON(t, h, http.MethodPost, "/register", "", body); w.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", w.Code)
	}

	w := doJSON(t, h, http.MethodPost, "/register", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second register: expected 400, got %d", w.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error != "Email já cadastrado" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}

func TestLoginFailuresShareShape(t *testing.T) {
	h, _ := newTestServer()

	doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"nome": "Ana", "email": "ana@x.com", "senha": "s3nha",
	})

	unknown := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "nosuch@x.com", "senha": "any",
	})
	wrongPass := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "ana@x.com", "senha": "errada",
	})

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestProtectedRouteHeaderParsing(t *testing.T) {
	h, _ := newTestServer()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"one part", "Bearer"},
		{"three parts", "Bearer a b"},
		{"tampered token", "Bearer not.a.token"},
	}

	for _, c := range cases {
		w := doJSON(t, h, http.MethodGet, "/perfil", c.header, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", c.name, w.Code)
		}
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	h, _ := newTestServer()

	doJSON(t, h, http.MethodPost, "/register", "", map[string]string{
		"nome": "Ana", "email": "ana@x.com", "senha": "s3nha",
	})
	w := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"email": "ana@x.com", "senha": "s3nha",
	})

	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &login)

	mid := len(login.Token) / 2
	c := byte('a')
	if login.Token[mid] == c {
		c = 'b'
	}
	tampered := login.Token[:mid] + string(c) + login.Token[mid+1:]

	if w := doJSON(t, h, http.MethodGet, "/me", "Bearer "+tampered, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for tampered token, got %d", w.Code)
	}
}

func TestNewsEmptyTable(t *testing.T) {
	h, _ := newTestServer()

	w := doJSON(t, h, http.MethodGet, "/api/noticias", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []domain.NewsItem
	decodeBody(t, w, &items)
	if items == nil || len(items) != 0 {
		t.Errorf("expected [] body, got %q", w.Body.String())
	}
}

func TestListingsOrdered(t *testing.T) {
	h, store := newTestServer()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.AddNews(domain.NewsItem{Title: "velha", PublishedAt: base.Add(-24 * time.Hour)})
	store.AddNews(domain.NewsItem{Title: "nova", PublishedAt: base})
	store.AddCalendarEntry(domain.CalendarEntry{Title: "depois", Date: base.Add(24 * time.Hour)})
	store.AddCalendarEntry(domain.CalendarEntry{Title: "antes", Date: base})
	store.AddCashFlowEntry(domain.CashFlowEntry{Description: "antiga", Amount: 10, Kind: "entrada", MovedAt: base.Add(-time.Hour)})
	store.AddCashFlowEntry(domain.CashFlowEntry{Description: "recente", Amount: 25, Kind: "saida", MovedAt: base})

	var news []domain.NewsItem
	decodeBody(t, doJSON(t, h, http.MethodGet, "/api/noticias", "", nil), &news)
	if len(news) != 2 || news[0].Title != "nova" {
		t.Errorf("expected newest news first, got %#v", news)
	}

	var cal []domain.CalendarEntry
	decodeBody(t, doJSON(t, h, http.MethodGet, "/calendario", "", nil), &cal)
	if len(cal) != 2 || cal[0].Title != "antes" {
		t.Errorf("expected earliest entry first, got %#v", cal)
	}

	var cash []domain.CashFlowEntry
	decodeBody(t, doJSON(t, h, http.MethodGet, "/fluxo_caixa", "", nil), &cash)
	if len(cash) != 2 || cash[0].Description != "recente" {
		t.Errorf("expected most recent movement first, got %#v", cash)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestServer()

	if w := doJSON(t, h, http.MethodGet, "/login", "", nil); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /login: expected 405, got %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodPost, "/api/noticias", "", nil); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /api/noticias: expected 405, got %d", w.Code)
	}
}

func TestSSODisabled(t *testing.T) {
	h, _ := newTestServer()

	if w := doJSON(t, h, http.MethodGet, "/auth/sso/login", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when SSO is unconfigured, got %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodGet, "/auth/sso/callback", "", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 when SSO is unconfigured, got %d", w.Code)
	}
}
