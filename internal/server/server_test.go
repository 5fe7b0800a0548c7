package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/brokerbook/internal/database"
	"github.com/aristath/brokerbook/internal/services"
	testingpkg "github.com/aristath/brokerbook/internal/testing"
)

type testServer struct {
	*Server
	db      *database.DB
	dataDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, cleanup := testingpkg.NewTestDB(t, "records")
	dir := t.TempDir()
	dataset := services.NewDatasetService(db.Conn(), services.Options{DataDir: dir}, zerolog.Nop())

	srv := New(Config{
		Log:     zerolog.Nop(),
		DB:      db,
		Dataset: dataset,
		DataDir: dir,
		Port:    0,
		DevMode: true,
	})
	t.Cleanup(cleanup)
	return &testServer{Server: srv, db: db, dataDir: dir}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

// seedRecords enters one record of each kind through the API.
func (ts *testServer) seedRecords(t *testing.T) {
	t.Helper()
	for _, step := range []struct{ path, body string }{
		{"/api/stockquotes", `{"tickerSymbol":"AAPL","value":190.25,"date":"2024-05-01T00:00:00Z"}`},
		{"/api/investors", `{"id":100,"name":"Carol King","address":"42 Wall St","memberSince":"2015-09-01T00:00:00Z","stocks":[{"tickerSymbol":"AAPL","shares":10}]}`},
		{"/api/brokers", `{"id":1,"name":"Alice Smith","address":"1 Main St","dateOfHire":"2020-01-01T00:00:00Z","salary":75000,"status":"Full Time","clientIds":[100]}`},
		{"/api/companies", `{"companyName":"Acme Capital","brokerIds":[1]}`},
	} {
		rec := ts.do(t, http.MethodPost, step.path, step.body)
		require.Equal(t, http.StatusCreated, rec.Code, "%s: %s", step.path, rec.Body.String())
	}
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "ok", resp["database"])
	if d, ok := resp["disk"].(map[string]interface{}); ok {
		assert.Equal(t, ts.dataDir, d["path"])
	}
}

func TestHealth_Deep(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health?deep=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]interface{}](t, rec)["database"])

	require.NoError(t, ts.db.Close())
	rec = ts.do(t, http.MethodGet, "/health?deep=1", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", decode[map[string]interface{}](t, rec)["status"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.db.Close())

	rec := ts.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", decode[map[string]interface{}](t, rec)["status"])
}

func TestRecords_AddAndList(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRecords(t)

	brokers := decode[[]map[string]interface{}](t, ts.do(t, http.MethodGet, "/api/brokers", ""))
	require.Len(t, brokers, 1)
	assert.Equal(t, "Alice Smith", brokers[0]["name"])
	assert.Equal(t, []interface{}{"Carol King"}, brokers[0]["clientNames"])

	investors := decode[[]map[string]interface{}](t, ts.do(t, http.MethodGet, "/api/investors", ""))
	require.Len(t, investors, 1)
	assert.InDelta(t, 1902.5, investors[0]["accountValue"], 1e-9)

	companies := decode[[]map[string]interface{}](t, ts.do(t, http.MethodGet, "/api/companies", ""))
	require.Len(t, companies, 1)
	assert.Equal(t, []interface{}{"Alice Smith"}, companies[0]["brokerNames"])

	quotes := decode[[]map[string]interface{}](t, ts.do(t, http.MethodGet, "/api/stockquotes", ""))
	require.Len(t, quotes, 1)
	assert.Equal(t, "AAPL", quotes[0]["tickerSymbol"])
}

func TestRecords_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{"long ticker", "/api/stockquotes", `{"tickerSymbol":"TOOLONG","value":1}`, "ticker symbol"},
		{"zero salary", "/api/brokers", `{"id":5,"name":"Zed","address":"x","salary":0,"status":"Full Time"}`, "salary"},
		{"bad status", "/api/brokers", `{"id":5,"name":"Zed","address":"x","salary":1,"status":"Intern"}`, "status"},
		{"zero id", "/api/investors", `{"id":0,"name":"Zed","address":"x"}`, "id"},
		{"missing company name", "/api/companies", `{"brokerIds":[]}`, "company name"},
		{"malformed body", "/api/brokers", `{"id":`, "invalid request body"},
		{"unknown field", "/api/stockquotes", `{"ticker":"AAPL"}`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			rec := ts.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[errorResponse](t, rec).Error, tt.message)
		})
	}
}

func TestData_SaveThenLoad(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRecords(t)

	rec := ts.do(t, http.MethodPost, "/api/data/save", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.FileExists(t, filepath.Join(ts.dataDir, "brokers.xml"))

	rec = ts.do(t, http.MethodPost, "/api/data/load", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[dataResponse](t, rec)
	assert.Equal(t, "load", resp.Operation)
	assert.Equal(t, "sequential", resp.Mode)
	assert.Equal(t, services.Summary{StockQuotes: 1, Brokers: 1, Investors: 1, InvestmentCompanies: 1}, resp.Records)
}

func TestData_LoadFailureIsGeneric(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/data/load", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, dataOperationFailed, decode[errorResponse](t, rec).Error)
	assert.NotContains(t, rec.Body.String(), ts.dataDir)
}

func TestData_TextValidationFailureIsFileError(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRecords(t)

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/api/data/export/csv", "").Code)
	require.NoError(t, os.WriteFile(filepath.Join(ts.dataDir, "brokers.csv"), []byte("Alice Smith,2020-01-01,-5\n"), 0644))

	rec := ts.do(t, http.MethodPost, "/api/data/import/csv", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, dataOperationFailed, decode[errorResponse](t, rec).Error)
}

func TestData_ExportImport(t *testing.T) {
	ts := newTestServer(t)
	ts.seedRecords(t)

	// Text goes last: it keeps only a few fields per record.
	for _, format := range []string{"ser", "xml", "json", "db", "csv"} {
		t.Run(format, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/data/export/"+format, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			rec = ts.do(t, http.MethodPost, "/api/data/import/"+format, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, format, decode[dataResponse](t, rec).Format)
		})
	}
}

func TestData_UnknownFormat(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/data/export/yaml", "/api/data/import/txt"} {
		rec := ts.do(t, http.MethodPost, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Contains(t, decode[errorResponse](t, rec).Error, "unknown format")
	}
}
