package posclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
)

func TestPOSClient_GetSales(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/integracoes/vendas/periodo", r.URL.Path)
		assert.Equal(t, "2024-01-08", r.URL.Query().Get("inicio_periodo"))
		assert.Equal(t, "2024-01-14", r.URL.Query().Get("fim_periodo"))
		assert.Equal(t, "loja-1", r.URL.Query().Get("loja"))
		assert.Equal(t, "Bearer segredo", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"data":"2024-01-08","status":"FINALIZADA","valor_bruto":110,"desconto":10,"valor_liquido":100.25}]`))
	}))
	defer server.Close()

	client := NewClient(config.POS{URL: server.URL + "/api", AccessToken: "segredo"})

	orders, err := client.GetSales(context.Background(), SalesConsultationParams{
		StartDate: "2024-01-08",
		EndDate:   "2024-01-14",
		StoreCode: "loja-1",
	})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "2024-01-08", orders[0].Date)
	assert.Equal(t, "100.25", orders[0].NetAmount.String())
}

func TestPOSClient_GetSales_StatusDeErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(config.POS{URL: server.URL})

	_, err := client.GetSales(context.Background(), SalesConsultationParams{StoreCode: "loja-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
