// Package dashboard owns the data sources behind the storefront dashboard and
// derives the view model shown for every tab.
package dashboard

import (
	"context"
	"sync"

	"diistore/internal/area"
	"diistore/internal/catalog"
	"diistore/internal/components/assert"
	"diistore/internal/components/telemetry"
	"diistore/internal/upstream"
)

const (
	report_dashboard_load_products       = "dashboard.load-products"
	report_dashboard_load_stock          = "dashboard.load-stock"
	report_dashboard_load_area           = "dashboard.load-area"
	report_dashboard_load_other_products = "dashboard.load-other-products"
	report_dashboard_transition          = "dashboard.transition"
)

type Options struct {
	Catalog       catalog.API
	Area          area.Fetcher
	OtherProducts []catalog.Product
	Payment       PaymentConfig
	Telemetry     telemetry.API
}

// Dashboard is the page controller. Every source is loaded independently,
// a failure in one never affects the others, and every failure is presented
// as an empty list.
type Dashboard struct {
	catalog catalog.API
	area    area.Fetcher
	other   []catalog.Product
	payment PaymentConfig
	tel     telemetry.API

	mountOnce sync.Once
	mounted   chan struct{}

	mu            sync.Mutex
	products      Source[catalog.Product]
	stock         Source[catalog.StockItem]
	areaData      Source[area.Record]
	otherProducts Source[catalog.Product]
	areaQuery     string
	areaFiltered  area.Dataset
}

func New(opts Options) *Dashboard {
	assert.NotNil(opts.Catalog, "Catalog")
	assert.NotNil(opts.Area, "Area")

	tel := opts.Telemetry
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}

	return &Dashboard{
		catalog:      opts.Catalog,
		area:         opts.Area,
		other:        opts.OtherProducts,
		payment:      opts.Payment,
		tel:          telemetry.NewScopedAPI("page", tel),
		mounted:      make(chan struct{}),
		areaFiltered: area.Dataset{},
	}
}

// Mount starts the initial load of every source. Stock, products and the area
// table load concurrently in no particular order, other products load
// synchronously. The returned channel is closed once the three concurrent
// loads have completed. Calling Mount again does nothing and returns the same
// channel.
func (d *Dashboard) Mount(ctx context.Context) <-chan struct{} {
	d.mountOnce.Do(func() {
		stockDone := d.loadStock(ctx)
		productsDone := startLoad(
			d, ctx, &d.products, false,
			report_dashboard_load_products,
			d.catalog.ListProducts,
			nil,
		)
		areaDone := startLoad(
			d, ctx, &d.areaData, false,
			report_dashboard_load_area,
			func(ctx context.Context) ([]area.Record, error) {
				return d.area.Fetch(ctx)
			},
			d.refilterLocked,
		)
		d.loadOtherProducts()

		go func() {
			<-stockDone
			<-productsDone
			<-areaDone
			close(d.mounted)
		}()
	})
	return d.mounted
}

// RefreshStock loads the stock again. It does not wait for or cancel a load
// that is already running: overlapping refreshes race and the response that
// arrives last is the one kept. The returned channel is closed when this
// refresh completes.
func (d *Dashboard) RefreshStock(ctx context.Context) <-chan struct{} {
	return d.loadStock(ctx)
}

func (d *Dashboard) loadStock(ctx context.Context) <-chan struct{} {
	return startLoad(
		d, ctx, &d.stock, true,
		report_dashboard_load_stock,
		d.catalog.CheckStock,
		nil,
	)
}

func (d *Dashboard) loadOtherProducts() {
	d.mu.Lock()
	defer d.mu.Unlock()

	next, err := d.otherProducts.begin(false)
	if err != nil {
		d.tel.ReportBroken(report_dashboard_transition, err, report_dashboard_load_other_products)
		return
	}
	next, err = next.resolve(d.other)
	if err != nil {
		d.tel.ReportBroken(report_dashboard_transition, err, report_dashboard_load_other_products)
		return
	}
	d.otherProducts = next
}

// SetAreaQuery changes the area search query and recomputes the filtered view.
func (d *Dashboard) SetAreaQuery(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.areaQuery = query
	d.refilterLocked()
}

func (d *Dashboard) refilterLocked() {
	d.areaFiltered = area.Filter(d.areaData.Items(), d.areaQuery)
}

// startLoad moves cell to loading and fetches in the background. Each
// completion writes only to its own cell.
func startLoad[E any](
	d *Dashboard,
	ctx context.Context,
	cell *Source[E],
	refreshable bool,
	reportId string,
	fetch func(context.Context) ([]E, error),
	onChangeLocked func(),
) <-chan struct{} {
	done := make(chan struct{})

	d.mu.Lock()
	next, err := cell.begin(refreshable)
	if err != nil {
		d.mu.Unlock()
		d.tel.ReportBroken(report_dashboard_transition, err, reportId)
		close(done)
		return done
	}
	*cell = next
	if onChangeLocked != nil {
		onChangeLocked()
	}
	d.mu.Unlock()

	d.tel.ReportDebug("load started", reportId)

	go func() {
		defer close(done)

		value, fetchErr := fetch(ctx)

		var next Source[E]
		var err error
		d.mu.Lock()
		if fetchErr != nil {
			next, err = cell.fail(fetchErr)
		} else {
			next, err = cell.resolve(value)
		}
		if err == nil {
			*cell = next
			if onChangeLocked != nil {
				onChangeLocked()
			}
		}
		d.mu.Unlock()

		switch {
		case err != nil:
			d.tel.ReportBroken(report_dashboard_transition, err, reportId)
		case fetchErr != nil:
			d.tel.ReportWarning(reportId, fetchErr, upstream.KindOf(fetchErr).String())
		default:
			d.tel.ReportCount(reportId, int64(len(value)))
		}
	}()

	return done
}

// Products returns the state of the API-backed product list.
func (d *Dashboard) Products() Source[catalog.Product] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.products
}

// Stock returns the state of the stock list.
func (d *Dashboard) Stock() Source[catalog.StockItem] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stock
}

// Area returns the state of the scraped coverage table.
func (d *Dashboard) Area() Source[area.Record] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.areaData
}

// OtherProducts returns the state of the locally bundled product list.
func (d *Dashboard) OtherProducts() Source[catalog.Product] {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.otherProducts
}

// FilteredArea returns the coverage rows matching the current query.
func (d *Dashboard) FilteredArea() (query string, rows area.Dataset) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.areaQuery, d.areaFiltered
}
