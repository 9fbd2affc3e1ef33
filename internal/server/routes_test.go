package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/veridia/identity/api"
)

func TestHealthz(t *testing.T) {
	s := setupServer(t)
	routes := s.GenerateRoutes(s.metricsRegistry)

	resp := doRequest(routes, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestWellKnownJWKs(t *testing.T) {
	s := setupServer(t)
	routes := s.GenerateRoutes(s.metricsRegistry)

	resp := doRequest(routes, http.MethodGet, "/.well-known/jwks.json", nil)
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := &WellKnownJWKResponse{}
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), body))
	assert.Equal(t, len(body.Keys), 1)
	assert.Assert(t, body.Keys[0].Valid())
	assert.Assert(t, body.Keys[0].IsPublic())
}

func TestNotFound(t *testing.T) {
	s := setupServer(t)
	routes := s.GenerateRoutes(s.metricsRegistry)

	resp := doRequest(routes, http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	apiError := &api.Error{}
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), apiError))
	assert.Equal(t, apiError.Code, int32(http.StatusNotFound))
}

func TestVersion(t *testing.T) {
	s := setupServer(t)
	routes := s.GenerateRoutes(s.metricsRegistry)

	resp := doRequest(routes, http.MethodGet, "/api/version", nil)
	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	version := &api.Version{}
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), version))
	assert.Assert(t, version.Version != "")
}
