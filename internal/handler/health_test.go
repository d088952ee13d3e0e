package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivacabs/backend/internal/handler"
)

func TestHealth_200(t *testing.T) {
	// No services at all: liveness must not depend on anything downstream.
	router := handler.NewServer(nil, nil, nil, nil, nil, nil, nil).Routes(noAuth)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := doRequest(router, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Status string `json:"status"`
	}
	decodeInto(t, rec, &got)
	assert.Equal(t, "ok", got.Status)
}
