// Package scheduleclient consome a API de escalas. É usado pelo schedulectl
// para criar turnos e consultar bloqueios em uma API já em execução.
package scheduleclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
	"github.com/vfg2006/shift-scheduler-api/internal/domain"
	"github.com/vfg2006/shift-scheduler-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	CreateShift(ctx context.Context, req *domain.ShiftRequest) (*domain.Shift, error)
	ListShifts(ctx context.Context, companyID, date string) ([]*domain.Shift, error)
	CheckWeekLock(ctx context.Context, companyID, weekStartDate string) (*domain.WeekLockStatus, error)
}

type ScheduleClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Client.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &ScheduleClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Client.BaseURL,
		token:   cfg.Client.Token,
	}
}

// do executa a requisição e decodifica a resposta em out. Respostas fora da
// faixa 2xx viram apiErrors.APIError com o código devolvido pela API.
func (c *ScheduleClient) do(ctx context.Context, method, endpoint string, query url.Values, body, out any) error {
	target, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	target.Path = path.Join(target.Path, endpoint)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar a requisição")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiErrors.APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Code == "" {
			return fmt.Errorf("%s %s falhou com status: %s", method, endpoint, resp.Status)
		}
		return errors.WithMessagef(apiErr, "%s %s", method, endpoint)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}
	return nil
}
