package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"diistore/internal/components/assert"
	"diistore/internal/components/telemetry"
	"diistore/internal/upstream"

	"github.com/go-resty/resty/v2"
)

const (
	report_client_list_product = "client.list-product"
	report_client_check_stock  = "client.check-stock"
)

const (
	listProductPath = "/api/list_product"
	checkStockPath  = "/api/cek_stock"
)

// API is the source of API-backed products and stock.
//
// note: fault injection point
type API interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CheckStock(ctx context.Context) ([]StockItem, error)
}

type ClientOptions struct {
	BaseUrl string
	// Timeout bounds each request, 0 means no timeout.
	Timeout time.Duration
}

// Client talks to the storefront's internal JSON API.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) Client {
	assert.NotEmptyStr(opts.BaseUrl, "BaseUrl")
	assert.NotNil(tel, "tel")

	tel = telemetry.NewScopedAPI("catalog", tel)

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.SetHeader("accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	telemetry.InstrumentResty(httpClient, tel)

	return Client{http: httpClient, tel: tel}
}

// Client exposes the underlying resty client so callers can attach extra
// instrumentation.
func (c Client) Client() *resty.Client {
	return c.http
}

// ListProducts implements API.
func (c Client) ListProducts(ctx context.Context) ([]Product, error) {
	return getList[Product](ctx, c, listProductPath, "list_product", report_client_list_product)
}

// CheckStock implements API.
func (c Client) CheckStock(ctx context.Context) ([]StockItem, error) {
	return getList[StockItem](ctx, c, checkStockPath, "cek_stock", report_client_check_stock)
}

// getList fetches a `{"data": [...]}` envelope. A missing or null data field
// is an empty list, not an error.
func getList[T any](ctx context.Context, c Client, path, source, reportId string) ([]T, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		c.tel.ReportBroken(reportId, fmt.Errorf("fetch: %w", err))
		return nil, upstream.Network(source, err)
	}
	if res.IsError() {
		err := upstream.Status(source, res.StatusCode(), res.Status())
		c.tel.ReportBroken(reportId, err)
		return nil, err
	}

	var body listResponse[T]
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		c.tel.ReportBroken(reportId, fmt.Errorf("decode json: %w", err), res.String())
		return nil, upstream.Parse(source, err)
	}
	if body.Data == nil {
		body.Data = []T{}
	}

	c.tel.ReportCount(reportId, int64(len(body.Data)))
	return body.Data, nil
}
