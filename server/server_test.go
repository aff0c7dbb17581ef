package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/finsight/finsight"
	"github.com/finsight/finsight/store"
)

var testSecret = []byte("test-secret")

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := New(Config{
		Store:      store.NewFileStore(t.TempDir()),
		JWTSecret:  testSecret,
		Quiescence: 10 * time.Millisecond,
		Logger:     zerolog.Nop(),
	})
	t.Cleanup(func() { s.Close() })
	return s
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := newTestServer(t).Router()

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong secret", func() string {
			tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"})
			s, _ := tok.SignedString([]byte("other-secret"))
			return s
		}()},
		{"missing subject", func() string {
			tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
			s, _ := tok.SignedString(testSecret)
			return s
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/api/transactions", tt.token, nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}

	// Health stays open.
	if w := do(t, r, http.MethodGet, "/healthz", "", nil); w.Code != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", w.Code)
	}
}

func TestTransactionLifecycle(t *testing.T) {
	r := newTestServer(t).Router()
	token := signToken(t, "alice")

	w := do(t, r, http.MethodPost, "/api/transactions", token, finsight.Transaction{
		Type: finsight.Income, Category: "Salary", Amount: 100,
	})
	// Date is required.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("add without date status = %d, want 400", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/transactions", token, map[string]any{
		"type": "income", "category": "Salary", "amount": 100, "date": "2026-02-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d, body %s", w.Code, w.Body)
	}
	var created finsight.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created transaction: %v", err)
	}
	if created.ID == "" {
		t.Errorf("server did not assign an id")
	}

	w = do(t, r, http.MethodGet, "/api/transactions", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), created.ID) {
		t.Errorf("list status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, r, http.MethodPatch, "/api/transactions/"+created.ID, token, map[string]any{
		"type": "income", "category": "Salary", "amount": 250, "date": "2026-02-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, r, http.MethodDelete, "/api/transactions/"+created.ID, token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = do(t, r, http.MethodDelete, "/api/transactions/"+created.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	r := newTestServer(t).Router()

	w := do(t, r, http.MethodPost, "/api/transactions", signToken(t, "alice"), map[string]any{
		"type": "expense", "category": "Housing", "amount": 1400, "date": "2026-02-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add status = %d", w.Code)
	}
	var created finsight.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created transaction: %v", err)
	}

	// Bob gets his own seeded book, never alice's records.
	w = do(t, r, http.MethodGet, "/api/transactions", signToken(t, "bob"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var resp struct {
		Items []finsight.Transaction `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(resp.Items) != len(finsight.SampleTransactions()) {
		t.Errorf("bob sees %d transactions, want the sample set", len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.ID == created.ID {
			t.Errorf("bob sees alice's transaction %s", created.ID)
		}
	}
}

// A user's very first request seeds the sample book and persists it, so a
// later session starts from written documents.
func TestFirstTouchSeedsSamples(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	token := signToken(t, "alice")

	w := do(t, r, http.MethodGet, "/api/debts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var resp struct {
		Items []finsight.Debt `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(resp.Items) != len(finsight.SampleDebts()) {
		t.Errorf("fresh user sees %d debts, want the sample set", len(resp.Items))
	}

	// The seeds reach the store once the coalescing window passes.
	sess, err := s.session(context.Background(), "alice")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for sess.syncer.Status() != store.StatusSaved && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	b, seeded, err := store.LoadBook(context.Background(), s.cfg.Store, "alice")
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if seeded {
		t.Errorf("seeds were not persisted, a reload seeded again")
	}
	if len(b.Debts) != len(finsight.SampleDebts()) {
		t.Errorf("store holds %d debts, want the sample set", len(b.Debts))
	}
}

func TestSummaryEndpoint(t *testing.T) {
	r := newTestServer(t).Router()
	token := signToken(t, "alice")

	w := do(t, r, http.MethodPost, "/api/reset", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, r, http.MethodGet, "/api/summary?view=monthly&ref=2026-02", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary status = %d, body %s", w.Code, w.Body)
	}
	var sum finsight.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if sum.Stats.Income != 6370 {
		t.Errorf("sample income = %v, want 6370", sum.Stats.Income)
	}
	if len(sum.Trend) != 31 {
		t.Errorf("trend has %d points, want 31", len(sum.Trend))
	}

	if w := do(t, r, http.MethodGet, "/api/summary?view=hourly", token, nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad view status = %d, want 400", w.Code)
	}
}

// The forecast series spans five recorded months, the current month and
// six projected months, twelve slots in all.
func TestForecastEndpoint(t *testing.T) {
	r := newTestServer(t).Router()
	token := signToken(t, "alice")

	w := do(t, r, http.MethodGet, "/api/forecast", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("forecast status = %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		Months []finsight.ForecastMonth `json:"months"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding forecast: %v", err)
	}
	if len(resp.Months) != 12 {
		t.Fatalf("forecast has %d slots, want 12", len(resp.Months))
	}
	if resp.Months[5].Current != true || resp.Months[5].Projected {
		t.Errorf("slot 5 = %+v, want the current month", resp.Months[5])
	}
	if !resp.Months[11].Projected {
		t.Errorf("last slot = %+v, want projected", resp.Months[11])
	}
}

func TestExportImport(t *testing.T) {
	r := newTestServer(t).Router()
	token := signToken(t, "alice")

	if w := do(t, r, http.MethodPost, "/api/reset", token, nil); w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/export", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	exported := w.Body.Bytes()

	if w := do(t, r, http.MethodDelete, "/api/data", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/import", bytes.NewReader(exported))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", rec.Code, rec.Body)
	}
	var counts struct {
		Transactions int `json:"transactions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("decoding import response: %v", err)
	}
	if counts.Transactions != 20 {
		t.Errorf("import restored %d transactions, want 20", counts.Transactions)
	}

	if w := do(t, r, http.MethodPost, "/api/import", token, "not a backup"); w.Code != http.StatusBadRequest {
		t.Errorf("bad import status = %d, want 400", w.Code)
	}
}

func TestSettingsAndSync(t *testing.T) {
	s := newTestServer(t)
	r := s.Router()
	token := signToken(t, "alice")

	w := do(t, r, http.MethodPut, "/api/settings", token, finsight.Settings{View: finsight.Yearly, ActiveTab: "debts"})
	if w.Code != http.StatusOK {
		t.Fatalf("put settings status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, r, http.MethodGet, "/api/settings", token, nil)
	var got finsight.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding settings: %v", err)
	}
	if got.View != finsight.Yearly || got.ActiveTab != "debts" {
		t.Errorf("settings = %+v, want the saved values", got)
	}

	// The coalesced write eventually reaches the store.
	sess, err := s.session(context.Background(), "alice")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for sess.syncer.Status() != store.StatusSaved && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := sess.syncer.Status(); got != store.StatusSaved {
		t.Errorf("sync status = %q, want saved", got)
	}

	w = do(t, r, http.MethodGet, "/api/sync", token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("sync status endpoint = %d, want 200", w.Code)
	}
}

func TestChatWithoutAdvisor(t *testing.T) {
	r := newTestServer(t).Router()
	w := do(t, r, http.MethodPost, "/api/chat", signToken(t, "alice"), map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("chat without advisor status = %d, want 503", w.Code)
	}
}

func TestPayoffEndpoint(t *testing.T) {
	r := newTestServer(t).Router()
	token := signToken(t, "alice")

	if w := do(t, r, http.MethodDelete, "/api/data", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", w.Code)
	}

	limit := 12000.0
	w := do(t, r, http.MethodPost, "/api/debts", token, finsight.Debt{
		Name: "Chase Sapphire", Type: "Credit Card", Balance: 3200,
		InterestRate: 21.99, MinimumPayment: 85, CreditLimit: &limit,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add debt status = %d, body %s", w.Code, w.Body)
	}

	w = do(t, r, http.MethodGet, "/api/payoff", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("payoff status = %d", w.Code)
	}
	var resp struct {
		Items []finsight.DebtPayoff `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding payoff: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Payoff.Months != 65 {
		t.Errorf("payoff = %+v, want 65 months", resp.Items)
	}
}
