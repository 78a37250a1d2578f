package verify_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stateid/modules/verify"
	"github.com/dmitrymomot/stateid/pkg/logger"
	"github.com/dmitrymomot/stateid/pkg/requestid"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *verify.ErrorDetail `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func TestListJurisdictions(t *testing.T) {
	t.Parallel()
	h := verify.Router(verify.Options{})

	rec, env := do(t, h, http.MethodGet, "/jurisdictions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var list []verify.Jurisdiction
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 51)
	assert.Equal(t, "AK", list[0].Code)
	assert.Equal(t, "3 to 15 Alpha/Numeric", list[0].Synopsis)
	assert.Equal(t, []string{`\w{3,15}`}, list[0].Patterns)

	for _, j := range list {
		assert.NotEqual(t, "NONE", j.Code)
	}
}

func TestGetJurisdiction(t *testing.T) {
	t.Parallel()
	h := verify.Router(verify.Options{})

	t.Run("known code in any case", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/jurisdictions/ia", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var j verify.Jurisdiction
		require.NoError(t, json.Unmarshal(env.Data, &j))
		assert.Equal(t, "IA", j.Code)
		assert.Equal(t, "9 Numeric or 3 numbers, 2 letters, and 4 numbers", j.Synopsis)
		assert.Equal(t, []string{`\d{9}`, `\d{3}[A-Za-z]{2}\d{4}`}, j.Patterns)
	})

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/jurisdictions/JA", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_jurisdiction", env.Error.Code)
		assert.Equal(t, "JA is not valid", env.Error.Message)
	})

	t.Run("NONE is not exposed", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, http.MethodGet, "/jurisdictions/NONE", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	h := verify.Router(verify.Options{})

	t.Run("valid identifier", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/validate", `{"jurisdiction":"wi","id":"A1234567890123"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, env.Error)

		var res verify.ValidateResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.True(t, res.Valid)
		assert.Equal(t, "wi", res.Jurisdiction)
		assert.Equal(t, "1 Alpha + 13 Numeric", res.Synopsis)
	})

	t.Run("blank jurisdiction", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, http.MethodPost, "/validate", `{"jurisdiction":"","id":"A1234567890123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("format mismatch", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/validate", `{"jurisdiction":"CT","id":"9876543210"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, "CT must have the following format: 9 Numeric", env.Error.Message)
		assert.Equal(t, map[string][]string{"id": {"CT must have the following format: 9 Numeric"}}, env.Error.Details)

		var res verify.ValidateResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.False(t, res.Valid)
	})

	t.Run("unknown jurisdiction", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/validate", `{"jurisdiction":"JA","id":"A1234567890123"}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, map[string][]string{"jurisdiction": {"JA is not valid"}}, env.Error.Details)
	})

	t.Run("identifier too long", func(t *testing.T) {
		t.Parallel()
		body := `{"jurisdiction":"","id":"` + strings.Repeat("1", 65) + `"}`
		rec, env := do(t, h, http.MethodPost, "/validate", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, []string{"must be at most 64 characters long"}, env.Error.Details["id"])
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodPost, "/validate", `{"jurisdiction":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/validate", "")
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "method_not_allowed", env.Error.Code)
	})
}

func TestValidateLogsVerdict(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	h := requestid.Middleware(verify.Router(verify.Options{Logger: log}))

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`{"jurisdiction":"tx","id":"1234567"}`))
	req.Header.Set(requestid.Header, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "identifier checked", entry["msg"])
	assert.Equal(t, "tx", entry["jurisdiction"])
	assert.Equal(t, "format_mismatch", entry["verdict"])
	assert.Equal(t, "verify", entry["component"])
	assert.Equal(t, "req-42", entry["request_id"])
}
