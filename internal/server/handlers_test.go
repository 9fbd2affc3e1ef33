package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/veridia/identity/api"
)

func TestSignup(t *testing.T) {
	s := setupServer(t)
	routes := s.GenerateRoutes(s.metricsRegistry)

	resp := doRequest(routes, http.MethodPost, "/api/signup",
		jsonBody(t, &api.SignupRequest{Email: "orko@example.com", Password: "trollan"}))
	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	user := &api.User{}
	assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), user))
	assert.Equal(t, user.Name, "orko@example.com")
	assert.Assert(t, user.ID != 0)

	t.Run("duplicate email", func(t *testing.T) {
		resp := doRequest(routes, http.MethodPost, "/api/signup",
			jsonBody(t, &api.SignupRequest{Email: "orko@example.com", Password: "trollan"}))
		assert.Equal(t, http.StatusConflict, resp.Code, resp.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		resp := doRequest(routes, http.MethodPost, "/api/signup",
			jsonBody(t, &api.SignupRequest{Email: "not-an-email", Password: "trollan"}))
		assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
	})

	t.Run("short password", func(t *testing.T) {
		resp := doRequest(routes, http.MethodPost, "/api/signup",
			jsonBody(t, &api.SignupRequest{Email: "duncan@example.com", Password: "nope"}))
		assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())

		apiError := &api.Error{}
		assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), apiError))
		assert.Equal(t, len(apiError.FieldErrors), 1)
		assert.Equal(t, apiError.FieldErrors[0].FieldName, "password")
	})
}

func TestLogin(t *testing.T) {
	s := setupServer(t)
	routes := s.GenerateRoutes(s.metricsRegistry)

	resp := doRequest(routes, http.MethodPost, "/api/signup",
		jsonBody(t, &api.SignupRequest{Email: "teela@example.com", Password: "guardian"}))
	assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	t.Run("success", func(t *testing.T) {
		resp := doRequest(routes, http.MethodPost, "/api/login",
			jsonBody(t, &api.LoginRequest{Email: "teela@example.com", Password: "guardian"}))
		assert.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		login := &api.LoginResponse{}
		assert.NilError(t, json.Unmarshal(resp.Body.Bytes(), login))
		assert.Equal(t, login.Name, "teela@example.com")
		assert.Assert(t, login.Token != "")
		assert.Assert(t, !login.Expires.IsZero())
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := doRequest(routes, http.MethodPost, "/api/login",
			jsonBody(t, &api.LoginRequest{Email: "teela@example.com", Password: "wrong"}))
		assert.Equal(t, http.StatusUnauthorized, resp.Code, resp.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		resp := doRequest(routes, http.MethodPost, "/api/login",
			jsonBody(t, &api.LoginRequest{Email: "hordak@example.com", Password: "guardian"}))
		assert.Equal(t, http.StatusUnauthorized, resp.Code, resp.Body.String())
	})
}
