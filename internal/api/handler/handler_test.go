package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
	"github.com/vfg2006/shift-scheduler-api/pkg/middleware"
)

func strPtr(s string) *string { return &s }

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
}

func managerClaims(companyID string) *domain.Claims {
	return &domain.Claims{UserID: 2, UserRoleID: domain.RoleManager, UserCompanyID: strPtr(companyID)}
}

// newRequest monta a requisição com as claims e os parâmetros de rota que o
// router e o AuthMiddleware colocariam no contexto.
func newRequest(t *testing.T, method, target string, body any, claims *domain.Claims, params ...httprouter.Param) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if claims != nil {
		ctx = context.WithValue(ctx, middleware.ContextKeyUser, claims)
	}
	if len(params) > 0 {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, httprouter.Params(params))
	}
	return req.WithContext(ctx)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[apiErrors.APIError](t, rec).Code
}
