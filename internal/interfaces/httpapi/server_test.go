package httpapi

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/storage"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	st := memory.NewStore()
	logos, err := storage.NewLocalLogoStorage(t.TempDir(), "/logos", logger)
	if err != nil {
		t.Fatalf("create local logo storage: %v", err)
	}

	teams := usecase.NewTeamService(st, logos, logger)
	handler := NewHandler(
		teams,
		usecase.NewMatchService(st, logger),
		usecase.NewStatisticsService(st, logger),
		usecase.NewReportService(st, logger, 2),
		usecase.NewTeamImportService(nil, teams, 0, 1, logger),
		1<<10,
		logger,
	)
	return NewRouter(handler, logger, RouterOptions{
		SwaggerEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
		LogoDir:            logos.Dir(),
	})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("%s %s: unmarshal response body %q: %v", method, path, rec.Body.String(), err)
	}
	return rec.Code, envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	return data
}

func number(t *testing.T, obj map[string]any, key string) int {
	t.Helper()
	v, ok := obj[key].(float64)
	if !ok {
		t.Fatalf("expected numeric %s in %v", key, obj)
	}
	return int(v)
}

func createTeam(t *testing.T, router http.Handler, name, country, group string) int {
	t.Helper()
	body := fmt.Sprintf(`{"nombre":%q,"pais":%q,"grupo":%q,"puntos":0}`, name, country, group)
	code, envelope := doJSON(t, router, http.MethodPost, "/equipos/", body)
	if code != http.StatusCreated {
		t.Fatalf("create team %s: expected 201, got %d (%v)", name, code, envelope)
	}
	return number(t, dataObject(t, envelope), "id")
}

func TestRouter_ColombiaScenario(t *testing.T) {
	router := newTestRouter(t)

	a := createTeam(t, router, "Atlético Nacional", "Colombia", "A")
	b := createTeam(t, router, "Millonarios", "colombia", "A")

	code, envelope := doJSON(t, router, http.MethodPost, "/partidos/",
		fmt.Sprintf(`{"equipo_local_id":%d,"equipo_visitante_id":%d,"goles_local":2,"goles_visitante":1,"fase":"grupos","fecha":"2026-06-14"}`, a, b))
	if code != http.StatusCreated {
		t.Fatalf("create match: expected 201, got %d (%v)", code, envelope)
	}
	matchID := number(t, dataObject(t, envelope), "id")
	if got := dataObject(t, envelope)["fase"]; got != "Grupos" {
		t.Fatalf("expected canonical phase Grupos, got %v", got)
	}

	_, envelope = doJSON(t, router, http.MethodGet, fmt.Sprintf("/equipos/%d", a), "")
	home := dataObject(t, envelope)
	if number(t, home, "puntos") != 3 || number(t, home, "goles_a_favor") != 2 {
		t.Fatalf("unexpected home team after match: %v", home)
	}
	_, envelope = doJSON(t, router, http.MethodGet, fmt.Sprintf("/equipos/%d", b), "")
	away := dataObject(t, envelope)
	if number(t, away, "puntos") != 0 || number(t, away, "goles_en_contra") != 2 {
		t.Fatalf("unexpected away team after match: %v", away)
	}

	_, envelope = doJSON(t, router, http.MethodGet, "/reportes/pais/colombia", "")
	rep := dataObject(t, envelope)
	if number(t, rep, "total_equipos") != 2 || number(t, rep, "total_puntos") != 3 {
		t.Fatalf("unexpected country report: %v", rep)
	}

	code, envelope = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/partidos/%d", matchID), "")
	if code != http.StatusOK {
		t.Fatalf("delete match: expected 200, got %d (%v)", code, envelope)
	}
	if ok, _ := dataObject(t, envelope)["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %v", envelope)
	}

	_, envelope = doJSON(t, router, http.MethodGet, fmt.Sprintf("/equipos/%d", a), "")
	home = dataObject(t, envelope)
	if number(t, home, "puntos") != 0 || number(t, home, "goles_a_favor") != 0 {
		t.Fatalf("unexpected home team after delete: %v", home)
	}
	_, envelope = doJSON(t, router, http.MethodGet, "/reportes/pais/Colombia", "")
	if got := number(t, dataObject(t, envelope), "total_puntos"); got != 0 {
		t.Fatalf("expected total_puntos=0 after delete, got %d", got)
	}

	code, _ = doJSON(t, router, http.MethodGet, "/partidos/inactivos", "")
	if code != http.StatusOK {
		t.Fatalf("list inactive matches: expected 200, got %d", code)
	}
	code, envelope = doJSON(t, router, http.MethodPost, fmt.Sprintf("/partidos/%d/restaurar", matchID), "")
	if code != http.StatusOK {
		t.Fatalf("restore match: expected 200, got %d (%v)", code, envelope)
	}
	_, envelope = doJSON(t, router, http.MethodGet, fmt.Sprintf("/equipos/%d", a), "")
	if got := number(t, dataObject(t, envelope), "puntos"); got != 3 {
		t.Fatalf("expected points back to 3 after restore, got %d", got)
	}
}

func TestRouter_NameUniqueAmongActiveTeams(t *testing.T) {
	router := newTestRouter(t)

	id := createTeam(t, router, "Perú", "Perú", "B")

	code, envelope := doJSON(t, router, http.MethodPost, "/equipos/", `{"nombre":"peru","pais":"Perú","grupo":"B"}`)
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate name, got %d (%v)", code, envelope)
	}

	if code, _ := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/equipos/%d", id), ""); code != http.StatusOK {
		t.Fatalf("delete team: expected 200, got %d", code)
	}
	createTeam(t, router, "peru", "PERU", "B")

	code, envelope = doJSON(t, router, http.MethodGet, "/equipos/buscar?nombre=PER%C3%9A", "")
	if code != http.StatusOK {
		t.Fatalf("find by name: expected 200, got %d (%v)", code, envelope)
	}
	if got := dataObject(t, envelope)["nombre"]; got != "peru" {
		t.Fatalf("expected active team peru, got %v", got)
	}
}

func TestRouter_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)
	a := createTeam(t, router, "Boca Juniors", "Argentina", "C")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "unknown key on create", method: http.MethodPost, path: "/equipos/", body: `{"nombre":"River Plate","pais":"Argentina","grupo":"C","goles_a_favor":9}`, want: http.StatusBadRequest},
		{name: "counter on update", method: http.MethodPut, path: fmt.Sprintf("/equipos/%d", a), body: `{"puntos":10}`, want: http.StatusBadRequest},
		{name: "unknown country", method: http.MethodPost, path: "/equipos/", body: `{"nombre":"Real Madrid","pais":"España","grupo":"C"}`, want: http.StatusBadRequest},
		{name: "short name", method: http.MethodPost, path: "/equipos/", body: `{"nombre":"AB","pais":"Chile","grupo":"C"}`, want: http.StatusBadRequest},
		{name: "same team match", method: http.MethodPost, path: "/partidos/", body: fmt.Sprintf(`{"equipo_local_id":%d,"equipo_visitante_id":%d}`, a, a), want: http.StatusBadRequest},
		{name: "missing team match", method: http.MethodPost, path: "/partidos/", body: fmt.Sprintf(`{"equipo_local_id":%d,"equipo_visitante_id":999}`, a), want: http.StatusNotFound},
		{name: "negative goals", method: http.MethodPost, path: "/partidos/", body: `{"equipo_local_id":1,"equipo_visitante_id":2,"goles_local":-1}`, want: http.StatusBadRequest},
		{name: "passes past int32", method: http.MethodPost, path: "/partidos/", body: `{"equipo_local_id":1,"equipo_visitante_id":2,"pases_local":4611686018427387905}`, want: http.StatusBadRequest},
		{name: "points past int32", method: http.MethodPost, path: "/equipos/", body: `{"nombre":"Peñarol","pais":"Uruguay","grupo":"B","puntos":2147483648}`, want: http.StatusBadRequest},
		{name: "team reference on match update", method: http.MethodPut, path: "/partidos/1", body: `{"equipo_local_id":5}`, want: http.StatusBadRequest},
		{name: "bad id", method: http.MethodGet, path: "/equipos/abc", want: http.StatusBadRequest},
		{name: "unknown country path", method: http.MethodGet, path: "/equipos/pais/atlantida", want: http.StatusBadRequest},
		{name: "unknown phase path", method: http.MethodGet, path: "/reportes/fase/dieciseisavos", want: http.StatusBadRequest},
		{name: "missing team", method: http.MethodGet, path: "/equipos/404", want: http.StatusNotFound},
		{name: "search without name", method: http.MethodGet, path: "/equipos/buscar", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, envelope := doJSON(t, router, tt.method, tt.path, tt.body)
			if code != tt.want {
				t.Fatalf("%s %s: expected %d, got %d (%v)", tt.method, tt.path, tt.want, code, envelope)
			}
			if _, ok := envelope["error"].(map[string]any); !ok {
				t.Fatalf("expected error envelope, got %v", envelope)
			}
		})
	}
}

func TestRouter_ReportsAndStandings(t *testing.T) {
	router := newTestRouter(t)
	a := createTeam(t, router, "Peñarol", "Uruguay", "D")
	b := createTeam(t, router, "Olimpia", "Paraguay", "D")

	code, envelope := doJSON(t, router, http.MethodPost, "/partidos/",
		fmt.Sprintf(`{"equipo_local_id":%d,"equipo_visitante_id":%d,"goles_local":1,"goles_visitante":1,"fase":"Final"}`, a, b))
	if code != http.StatusCreated {
		t.Fatalf("create match: expected 201, got %d (%v)", code, envelope)
	}

	code, envelope = doJSON(t, router, http.MethodGet, "/reportes/fase/final", "")
	if code != http.StatusOK {
		t.Fatalf("phase report: expected 200, got %d (%v)", code, envelope)
	}
	if got := number(t, dataObject(t, envelope), "total_goles"); got != 2 {
		t.Fatalf("expected total_goles=2, got %d", got)
	}

	code, envelope = doJSON(t, router, http.MethodGet, "/reportes/posiciones/d", "")
	if code != http.StatusOK {
		t.Fatalf("standings: expected 200, got %d (%v)", code, envelope)
	}
	groups, ok := envelope["data"].([]any)
	if !ok || len(groups) != 1 {
		t.Fatalf("expected one standings group, got %v", envelope["data"])
	}

	code, envelope = doJSON(t, router, http.MethodPost, "/reportes/regenerar", "")
	if code != http.StatusOK {
		t.Fatalf("rebuild: expected 200, got %d (%v)", code, envelope)
	}
	if got := number(t, dataObject(t, envelope), "success_count"); got != 17 {
		t.Fatalf("expected 17 rebuilt rows, got %d", got)
	}

	code, envelope = doJSON(t, router, http.MethodGet, "/reportes/pais/", "")
	if code != http.StatusOK {
		t.Fatalf("list country reports: expected 200, got %d", code)
	}
	if rows, _ := envelope["data"].([]any); len(rows) != 10 {
		t.Fatalf("expected 10 country rows after rebuild, got %d", len(rows))
	}
}

func TestRouter_ImportDisabled(t *testing.T) {
	router := newTestRouter(t)

	code, envelope := doJSON(t, router, http.MethodPost, "/importaciones/sportmonks/equipos", `{"grupo":"A"}`)
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d (%v)", code, envelope)
	}
}

func TestRouter_UploadLogo(t *testing.T) {
	router := newTestRouter(t)
	id := createTeam(t, router, "Bolívar", "Bolivia", "E")

	upload := func(contentType string, payload []byte) *httptest.ResponseRecorder {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="logo"; filename="crest.png"`)
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create multipart part: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("write multipart part: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("close multipart writer: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/equipos/%d/logo", id), &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := upload("image/png", []byte("\x89PNG fake image"))
	if rec.Code != http.StatusOK {
		t.Fatalf("upload logo: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal upload response: %v", err)
	}
	logoURL, _ := dataObject(t, envelope)["logo_url"].(string)
	if !strings.HasPrefix(logoURL, fmt.Sprintf("/logos/teams/%d/", id)) {
		t.Fatalf("unexpected logo_url %q", logoURL)
	}

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, logoURL, nil))
	if get.Code != http.StatusOK || !strings.HasPrefix(get.Body.String(), "\x89PNG") {
		t.Fatalf("expected stored logo to be served, got %d", get.Code)
	}

	if rec := upload("application/pdf", []byte("%PDF")); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported type, got %d", rec.Code)
	}
	if rec := upload("image/png", bytes.Repeat([]byte("x"), 4<<10)); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized logo, got %d", rec.Code)
	}
}

func TestRouter_Docs(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/equipos/") {
		t.Fatalf("expected openapi document, got %d", rec.Code)
	}
}

func TestRouter_DocsNotModified(t *testing.T) {
	router := newTestRouter(t)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("expected ETag on openapi document")
	}

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified || rec.Body.Len() != 0 {
		t.Fatalf("expected 304 without body, got %d", rec.Code)
	}

	ui := httptest.NewRecorder()
	router.ServeHTTP(ui, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if ui.Code != http.StatusOK || !strings.Contains(ui.Body.String(), "swagger-ui") {
		t.Fatalf("expected swagger ui page, got %d", ui.Code)
	}
}
