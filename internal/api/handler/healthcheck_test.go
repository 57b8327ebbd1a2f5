package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	t.Run("banco disponível", func(t *testing.T) {
		rec := serve(HealthcheckHandler(fakePinger{}), newRequest(t, http.MethodGet, "/healthcheck", nil, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[map[string]any](t, rec)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "ok", body["database"])
	})

	t.Run("banco indisponível", func(t *testing.T) {
		rec := serve(HealthcheckHandler(fakePinger{err: errors.New("connection refused")}), newRequest(t, http.MethodGet, "/healthcheck", nil, nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "degraded", decodeBody[map[string]any](t, rec)["status"])
	})
}

func TestCronJobs(t *testing.T) {
	t.Run("tipo inválido", func(t *testing.T) {
		rec := serve(RunCronJob(CronJobServices{}), newRequest(t, http.MethodPost, "/v1/cron/meta/run", nil, adminClaims(),
			httprouter.Param{Key: "type", Value: "meta"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("serviço não configurado", func(t *testing.T) {
		rec := serve(RunCronJob(CronJobServices{}), newRequest(t, http.MethodPost, "/v1/cron/week-lock/run", nil, adminClaims(),
			httprouter.Param{Key: "type", Value: CronJobTypeWeekLock}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("importação de vendas não configurada", func(t *testing.T) {
		rec := serve(RunCronJob(CronJobServices{}), newRequest(t, http.MethodPost, "/v1/cron/sales-import/run", nil, adminClaims(),
			httprouter.Param{Key: "type", Value: CronJobTypeSalesImport}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("all sem serviços é aceito", func(t *testing.T) {
		rec := serve(RunCronJob(CronJobServices{}), newRequest(t, http.MethodPost, "/v1/cron/all/run", nil, adminClaims(),
			httprouter.Param{Key: "type", Value: CronJobTypeAll}))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("status sem serviços", func(t *testing.T) {
		rec := serve(GetCronStatus(CronJobServices{}), newRequest(t, http.MethodGet, "/v1/cron/status", nil, adminClaims()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody[map[string]any](t, rec))
	})
}
