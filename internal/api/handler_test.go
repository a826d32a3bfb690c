// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ludomood/internal/cache"
	"github.com/tomtom215/ludomood/internal/catalog"
	"github.com/tomtom215/ludomood/internal/lexicon"
	"github.com/tomtom215/ludomood/internal/recommend"
)

func newTestRouter(t *testing.T, mwCfg *ChiMiddlewareConfig) http.Handler {
	t.Helper()

	lex, err := lexicon.Default(lexicon.Options{})
	if err != nil {
		t.Fatalf("lexicon.Default() error = %v", err)
	}
	engine, err := recommend.NewEngine(nil, lex, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	store := catalog.NewStore(zerolog.Nop())
	games, err := catalog.Seed()
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if _, err := store.Replace(games, "test"); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	h, err := NewHandler(engine, store, cache.New(time.Minute), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.RateLimitDisabled = true
	}
	return NewRouter(h, NewChiMiddleware(mwCfg)).Setup()
}

type envelope struct {
	Status   string          `json:"status"`
	Data     json.RawMessage `json:"data"`
	Metadata Metadata        `json:"metadata"`
	Error    *APIError       `json:"error"`
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode response: %v (body %q)", method, path, err, w.Body.String())
	}
	return w, env
}

func TestHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	w, env := do(t, router, http.MethodGet, "/api/v1/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var health HealthStatus
	if err := json.Unmarshal(env.Data, &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "healthy" || health.CatalogGames != 24 || health.CatalogVersion != 1 {
		t.Errorf("health = %+v", health)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing security headers")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestGames(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantTotal  int
		wantCode   string
	}{
		{"all", "/api/v1/games", http.StatusOK, 24, ""},
		{"by type ignores case", "/api/v1/games/type/Party", http.StatusOK, 5, ""},
		{"unknown type", "/api/v1/games/type/inconnu", http.StatusOK, 0, ""},
		{"by context", "/api/v1/games/context/famille", http.StatusOK, -1, ""},
		{"bad id", "/api/v1/games/abc", http.StatusBadRequest, 0, ErrCodeValidation},
		{"zero id", "/api/v1/games/0", http.StatusBadRequest, 0, ErrCodeValidation},
		{"unknown id", "/api/v1/games/999", http.StatusNotFound, 0, ErrCodeNotFound},
		{"unknown route", "/api/v1/nope", http.StatusNotFound, 0, ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := do(t, router, http.MethodGet, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
				}
				return
			}

			var list GameList
			if err := json.Unmarshal(env.Data, &list); err != nil {
				t.Fatal(err)
			}
			if list.Total != len(list.Games) {
				t.Errorf("Total = %d, len(Games) = %d", list.Total, len(list.Games))
			}
			if tt.wantTotal >= 0 && list.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", list.Total, tt.wantTotal)
			}
			if tt.wantTotal < 0 && list.Total == 0 {
				t.Error("Total = 0, want matches")
			}
		})
	}
}

func TestGame(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	w, env := do(t, router, http.MethodGet, "/api/v1/games/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var g catalog.Game
	if err := json.Unmarshal(env.Data, &g); err != nil {
		t.Fatal(err)
	}
	if g.ID != 2 || g.Name != "Azul" {
		t.Errorf("game = %d %q, want 2 Azul", g.ID, g.Name)
	}
	if w.Header().Get("ETag") == "" {
		t.Error("missing ETag")
	}
}

func TestCachedEndpoints(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/api/v1/stats", "/api/v1/games/1/similar"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, nil)
			_, first := do(t, router, http.MethodGet, path, "")
			_, second := do(t, router, http.MethodGet, path, "")

			if first.Metadata.Cached {
				t.Error("first call reported cached")
			}
			if !second.Metadata.Cached {
				t.Error("second call was not cached")
			}
			if string(first.Data) != string(second.Data) {
				t.Error("cached payload differs from computed payload")
			}
		})
	}
}

func TestSimilarGames(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)
	_, env := do(t, router, http.MethodGet, "/api/v1/games/6/similar", "")

	var res SimilarResult
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Game.ID != 6 {
		t.Errorf("Game.ID = %d, want 6", res.Game.ID)
	}
	if len(res.Similar) == 0 || len(res.Similar) > 5 {
		t.Fatalf("len(Similar) = %d, want 1..5", len(res.Similar))
	}
	for i, s := range res.Similar {
		if s.Game.ID == 6 {
			t.Error("target listed as similar to itself")
		}
		if i > 0 && s.Similarity > res.Similar[i-1].Similarity {
			t.Errorf("similar games not sorted: %d after %d", s.Similarity, res.Similar[i-1].Similarity)
		}
	}
}

func TestSearchTags(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantTotal  int
	}{
		{"substring match", `{"tags":["zen"]}`, http.StatusOK, 3},
		{"limit", `{"tags":["coopératif"],"limit":2}`, http.StatusOK, 2},
		{"no tags", `{"tags":[]}`, http.StatusBadRequest, 0},
		{"blank tag", `{"tags":["  "]}`, http.StatusBadRequest, 0},
		{"unknown field", `{"tags":["zen"],"x":1}`, http.StatusBadRequest, 0},
		{"not json", `zen`, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := do(t, router, http.MethodPost, "/api/v1/search/tags", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if env.Error == nil || env.Error.Code != ErrCodeValidation {
					t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
				}
				return
			}
			var list GameList
			if err := json.Unmarshal(env.Data, &list); err != nil {
				t.Fatal(err)
			}
			if list.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", list.Total, tt.wantTotal)
			}
		})
	}
}

func TestSuggestTags(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	w, env := do(t, router, http.MethodGet, "/api/v1/tags/suggest?prefix=COOP", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []TagSuggestion
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Tag != "coopératif" || got[0].Games != 6 {
		t.Errorf("suggestions = %+v, want [coopératif 6]", got)
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/tags/suggest", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing prefix status = %d, want 400", w.Code)
	}
	w, _ = do(t, router, http.MethodGet, "/api/v1/tags/suggest?prefix=a&limit=-1", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("negative limit status = %d, want 400", w.Code)
	}
}

func TestAnalyzeMood(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	w, env := do(t, router, http.MethodPost, "/api/v1/analyze/mood", `{"mood":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var p struct {
		Tags       []string `json:"detected_tags"`
		Confidence int      `json:"confidence"`
	}
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatal(err)
	}
	if len(p.Tags) != 1 || p.Tags[0] != "neutre" || p.Confidence != 45 {
		t.Errorf("blank mood profile = %+v, want neutral", p)
	}

	w, _ = do(t, router, http.MethodPost, "/api/v1/analyze/mood", `{"mood":"`+strings.Repeat("a", 2001)+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("oversized mood status = %d, want 400", w.Code)
	}
}

func TestAnalyzeBatch(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	w, env := do(t, router, http.MethodPost, "/api/v1/analyze/batch",
		`{"moods":["je suis crevé","entre amis","pour 5 joueurs"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	var items []struct {
		Index   int `json:"index"`
		Profile struct {
			IdealPlayers int `json:"ideal_players"`
		} `json:"mood_analysis"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	for i, it := range items {
		if it.Index != i {
			t.Errorf("items[%d].Index = %d", i, it.Index)
		}
	}
	if items[2].Profile.IdealPlayers != 5 {
		t.Errorf("items[2] ideal players = %d, want 5", items[2].Profile.IdealPlayers)
	}

	moods := make([]string, MaxBatchMoods+1)
	for i := range moods {
		moods[i] = "calme"
	}
	body, _ := json.Marshal(BatchAnalyzeRequest{Moods: moods})
	w, env = do(t, router, http.MethodPost, "/api/v1/analyze/batch", string(body))
	if w.Code != http.StatusBadRequest || env.Error == nil || env.Error.Code != ErrCodeValidation {
		t.Errorf("oversized batch: status %d error %+v", w.Code, env.Error)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"empty mood", `{"mood":"   "}`, http.StatusBadRequest, ErrCodeEmptyMood},
		{"negative id", `{"mood":"calme","game_ids":[-1]}`, http.StatusBadRequest, ErrCodeValidation},
		{"string id", `{"mood":"calme","game_ids":["a"]}`, http.StatusBadRequest, ErrCodeValidation},
		{"negative count", `{"mood":"calme","count":-2}`, http.StatusBadRequest, ErrCodeValidation},
		{"count above max", `{"mood":"calme","count":50}`, http.StatusBadRequest, ErrCodeValidation},
		{"unknown ids", `{"mood":"calme","game_ids":[9999]}`, http.StatusUnprocessableEntity, ErrCodeEmptyCatalog},
		{"empty library", `{"mood":"calme","library_only":true}`, http.StatusUnprocessableEntity, ErrCodeEmptyCatalog},
		{"ok", `{"mood":"soirée calme en couple, pas trop long","count":3}`, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, env := do(t, router, http.MethodPost, "/api/v1/recommend", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantCode != "" {
				if env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
				}
				return
			}

			var resp recommend.Response
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatal(err)
			}
			if len(resp.Recommendations) == 0 || len(resp.Recommendations) > 3 {
				t.Errorf("len(Recommendations) = %d, want 1..3", len(resp.Recommendations))
			}
			if resp.Metadata.TotalGamesAnalyzed != 24 {
				t.Errorf("TotalGamesAnalyzed = %d, want 24", resp.Metadata.TotalGamesAnalyzed)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitWindow = time.Minute
	router := newTestRouter(t, cfg)

	if w, _ := do(t, router, http.MethodGet, "/api/v1/games/1", ""); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	w, env := do(t, router, http.MethodGet, "/api/v1/games/1", "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("error = %+v", env.Error)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a\nb", `a\x0ab`},
		{"é\r", `é\x0d`},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
