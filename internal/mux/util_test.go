package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pokerdrills-server/internal/rng"
	"pokerdrills-server/pkg/drill"
)

func newTestServer() *httptest.Server {
	return httptest.NewServer(NewMux("v1.2.3", drill.NewGenerator(rng.NewSeeded(1), drill.DefaultOptions())))
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, errors.New("bad card"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"bad card","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, errors.New("secret detail"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","statusCode":500}`, w.Body.String())
}

func Test_decodeRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	var pp postClassifyPayload
	assert.False(t, decodeRequest(w, req, &pp))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(`{"cards":["AS"]}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	assert.True(t, decodeRequest(w, req, &pp))
	assert.Equal(t, []string{"AS"}, pp.Cards)
}
