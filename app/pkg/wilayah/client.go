package wilayah

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/school-platform/app/internal/config"
)

// Region is one row of the upstream administrative-area dataset.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Client reads the Indonesian administrative-area dataset published at
// wilayah.id. Responses wrap the rows in a "data" array.
type Client interface {
	Provinces(ctx context.Context) ([]Region, error)
	Regencies(ctx context.Context, provinceCode string) ([]Region, error)
}

type regionResponse struct {
	Data []Region `json:"data"`
}

type DefaultClient struct {
	httpClient *resty.Client
	config     config.WilayahConfig
	logger     *zap.Logger
}

func NewClient(httpClient *resty.Client, cfg config.WilayahConfig, logger *zap.Logger) Client {
	return &DefaultClient{
		httpClient: httpClient,
		config:     cfg,
		logger:     logger,
	}
}

func (c *DefaultClient) Provinces(ctx context.Context) ([]Region, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/provinces.json", c.config.BaseURL))
}

func (c *DefaultClient) Regencies(ctx context.Context, provinceCode string) ([]Region, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/regencies/%s.json", c.config.BaseURL, provinceCode))
}

func (c *DefaultClient) fetch(ctx context.Context, url string) ([]Region, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		c.logger.Error("failed to fetch regions", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	if resp.StatusCode() != 200 {
		c.logger.Warn("non-200 response from wilayah API",
			zap.String("url", url),
			zap.Int("status_code", resp.StatusCode()),
			zap.String("response", string(resp.Body())),
		)
		return nil, fmt.Errorf("wilayah API returned status %d", resp.StatusCode())
	}

	var result regionResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		c.logger.Error("failed to unmarshal regions", zap.String("url", url), zap.Error(err))
		return nil, err
	}

	return result.Data, nil
}
