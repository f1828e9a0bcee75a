package area

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"diistore/internal/components/assert"
	"diistore/internal/components/telemetry"
	"diistore/internal/upstream"
	"diistore/lib/htmlutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const (
	report_table_fetcher_fetch = "table-fetcher.fetch"
	report_table_fetcher_rows  = "table-fetcher.rows"
)

const source = "area_table"

var errNoTable = errors.New("document contains no table")

// Fetcher produces the coverage dataset.
//
// note: fault injection point
type Fetcher interface {
	Fetch(ctx context.Context) (Dataset, error)
}

type TableFetcherOptions struct {
	// SourceUrl is the page holding the coverage table.
	SourceUrl string
	// Timeout bounds the whole request, 0 means no timeout.
	Timeout time.Duration
	// CloudflareBypass wraps the transport with browser-like TLS and headers.
	CloudflareBypass bool
}

// TableFetcher fetches the coverage page over HTTP and extracts the first
// table on it.
type TableFetcher struct {
	http      *resty.Client
	sourceUrl string
	tel       telemetry.API
}

func NewTableFetcher(opts TableFetcherOptions, tel telemetry.API) TableFetcher {
	assert.NotEmptyStr(opts.SourceUrl, "SourceUrl")
	assert.NotNil(tel, "tel")

	tel = telemetry.NewScopedAPI("area", tel)

	httpClient := resty.New()
	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	telemetry.InstrumentResty(httpClient, tel)

	return TableFetcher{
		http:      httpClient,
		sourceUrl: opts.SourceUrl,
		tel:       tel,
	}
}

// Client exposes the underlying resty client so callers can attach extra
// instrumentation.
func (f TableFetcher) Client() *resty.Client {
	return f.http
}

// Fetch performs a single GET of the source page. It never retries; errors
// are always an *upstream.Error.
func (f TableFetcher) Fetch(ctx context.Context) (Dataset, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(f.sourceUrl)
	if err != nil {
		f.tel.ReportBroken(
			report_table_fetcher_fetch,
			fmt.Errorf("fetch: %w", err),
			f.sourceUrl,
		)
		return nil, upstream.Network(source, err)
	}
	if res.IsError() {
		err := upstream.Status(source, res.StatusCode(), res.Status())
		f.tel.ReportBroken(report_table_fetcher_fetch, err, f.sourceUrl)
		return nil, err
	}

	data, err := ParseTable(bytes.NewReader(res.Body()))
	if err != nil {
		f.tel.ReportBroken(
			report_table_fetcher_fetch,
			fmt.Errorf("parse html: %w", err),
			f.sourceUrl,
		)
		return nil, err
	}

	f.tel.ReportCount(report_table_fetcher_rows, int64(len(data)))
	return data, nil
}

// ParseTable extracts the rows of the first table in the document. The
// first row is treated as the header and skipped, the remaining rows map
// their cells to province, regency and area label in that order. Missing
// cells become empty strings.
func ParseTable(r io.Reader) (Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, upstream.Parse(source, err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, upstream.Parse(source, errNoTable)
	}

	data := Dataset{}
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		data = append(data, Record{
			Province:  htmlutil.CellText(cells, 0),
			Regency:   htmlutil.CellText(cells, 1),
			AreaLabel: htmlutil.CellText(cells, 2),
		})
	})

	return data, nil
}
