package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/go-advisor/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `Id,Name,Units,DoW,Start,End,Prerequisites
1,Calculus I,3,Sat,08:00,10:00,0
2,Calculus II,3,Sun,10:00,12:00,1
3,Physics,4,Tue,13:00,15:00,0
`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &server{
		cfg:    scheduler.NewDefaultConfiguration(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return newRouter(s, gin.New())
}

func uploadRequest(t *testing.T, path string, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func courseIDs(t *testing.T, v any) []float64 {
	t.Helper()
	list, ok := v.([]any)
	require.True(t, ok, "courses is a list")
	var ids []float64
	for _, item := range list {
		ids = append(ids, item.(map[string]any)["id"].(float64))
	}
	return ids
}

func TestEligible(t *testing.T) {
	req := uploadRequest(t, "/eligible", map[string]string{
		"catalog": testCatalog,
		"grades":  "Id,Grade\n1,12\n",
	})

	rec, body := serve(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []float64{2, 3}, courseIDs(t, body["courses"]))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNextTerm(t *testing.T) {
	req := uploadRequest(t, "/next-term", map[string]string{
		"catalog": testCatalog,
		"grades":  "Id,Grade\n",
	})

	rec, body := serve(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []float64{1, 3}, courseIDs(t, body["courses"]))
	assert.Equal(t, 10.0, body["gpa"])
	assert.Equal(t, 20.0, body["unitCap"])
	assert.Equal(t, 7.0, body["units"])
	assert.Equal(t, true, body["valid"])
}

func TestSimulate(t *testing.T) {
	req := uploadRequest(t, "/simulate", map[string]string{
		"catalog": testCatalog,
		"grades":  "Id,Grade\n",
	})

	rec, body := serve(t, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["runId"])
	terms, ok := body["terms"].([]any)
	require.True(t, ok)
	require.Len(t, terms, 2)
	second := terms[1].(map[string]any)
	assert.Equal(t, 2.0, second["term"])
	assert.Equal(t, []float64{2}, courseIDs(t, second["courses"]))
}

func TestSimulate_NoProgress(t *testing.T) {
	req := uploadRequest(t, "/simulate", map[string]string{
		"catalog": "Id,Name,Units,DoW,Start,End,Prerequisites\n1,Capstone,30,Mon,09:00,10:00,0\n",
		"grades":  "Id,Grade\n",
	})

	rec, body := serve(t, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, body["error"], "no progress possible")
	assert.Empty(t, body["terms"])
}

func TestMissingUpload(t *testing.T) {
	req := uploadRequest(t, "/eligible", map[string]string{"catalog": testCatalog})

	rec, body := serve(t, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing grades file", body["error"])
}

func TestMalformedCatalog(t *testing.T) {
	req := uploadRequest(t, "/next-term", map[string]string{
		"catalog": "Id,Name\n1,A\n",
		"grades":  "Id,Grade\n",
	})

	rec, body := serve(t, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "missing required column")
}

func TestPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/simulate", nil)

	rec, _ := serve(t, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
