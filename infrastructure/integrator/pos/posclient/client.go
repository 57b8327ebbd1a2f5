package posclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/shift-scheduler-api/infrastructure/integrator/pos/posdomain"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
)

type Client interface {
	GetSales(ctx context.Context, params SalesConsultationParams) (SalesConsultationResponse, error)
}

type POSClient struct {
	httpClient *http.Client
	config     config.POS
}

// NewClient cria o cliente da API de vendas do PDV.
func NewClient(cfg config.POS) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &POSClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

type SalesConsultationResponse []posdomain.Order
