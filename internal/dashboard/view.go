package dashboard

import (
	"fmt"
	"slices"

	"diistore/internal/area"
	"diistore/internal/catalog"
)

const (
	StockNotice         = "⚠️ Restok Bekasan dan Bulanan setiap jam 06:00"
	AreaPlaceholder     = "Cari provinsi/kabupaten/area..."
	AreaEmptyMessage    = "Tidak ada data"
	StockLoadingText    = "Loading stock..."
	ProductsLoadingText = "Loading produk..."
	AreaLoadingText     = "Loading area..."
)

// Snapshot is the view model of every tab at one point in time.
type Snapshot struct {
	Stock         StockView    `json:"stock"`
	Products      ProductsView `json:"products"`
	OtherProducts ProductsView `json:"other_products"`
	Area          AreaView     `json:"area"`
	Payment       PaymentView  `json:"payment"`
}

type StockView struct {
	Loading bool       `json:"loading"`
	Status  string     `json:"status"`
	Notice  string     `json:"notice"`
	Items   []StockRow `json:"items"`
}

type StockRow struct {
	Type       string             `json:"type"`
	Name       string             `json:"name"`
	Slots      int64              `json:"slots"`
	SlotsLabel string             `json:"slots_label"`
	Level      catalog.StockLevel `json:"level"`
}

type ProductsView struct {
	Loading bool          `json:"loading"`
	Status  string        `json:"status"`
	Items   []ProductCard `json:"items"`
}

type ProductCard struct {
	Title        string         `json:"title"`
	Name         string         `json:"name"`
	Code         string         `json:"code"`
	ProviderCode string         `json:"provider_code"`
	Description  string         `json:"description"`
	Price        catalog.Amount `json:"price"`
	PriceLabel   string         `json:"price_label"`
}

type AreaView struct {
	Loading      bool      `json:"loading"`
	Status       string    `json:"status"`
	Query        string    `json:"query"`
	Placeholder  string    `json:"placeholder"`
	Total        int       `json:"total"`
	Items        []AreaRow `json:"items"`
	Empty        bool      `json:"empty"`
	EmptyMessage string    `json:"empty_message,omitempty"`
}

type AreaRow struct {
	Record    area.Record    `json:"record"`
	Province  []area.Segment `json:"province"`
	Regency   []area.Segment `json:"regency"`
	AreaLabel []area.Segment `json:"area"`
}

// Snapshot builds the view model from the current state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	products := d.products
	stock := d.stock
	areaData := d.areaData
	other := d.otherProducts
	query := d.areaQuery
	filtered := d.areaFiltered
	d.mu.Unlock()

	return Snapshot{
		Stock:         BuildStockView(stock),
		Products:      BuildProductsView(products, catalog.ResellerMarkup),
		OtherProducts: BuildProductsView(other, 0),
		Area:          BuildAreaView(areaData, query, filtered),
		Payment:       BuildPaymentView(d.payment),
	}
}

// AreaViewFor builds the area view for query without touching the stored
// query, so that concurrent HTTP callers do not see each other's searches.
func (d *Dashboard) AreaViewFor(query string) AreaView {
	src := d.Area()
	return BuildAreaView(src, query, area.Filter(src.Items(), query))
}

// BuildStockView sorts stock by remaining slots, most first. Items with equal
// slots keep their upstream order.
func BuildStockView(src Source[catalog.StockItem]) StockView {
	items := slices.Clone(src.Items())
	slices.SortStableFunc(items, func(a, b catalog.StockItem) int {
		if a.Slots > b.Slots {
			return -1
		}
		if a.Slots < b.Slots {
			return 1
		}
		return 0
	})

	rows := make([]StockRow, 0, len(items))
	for _, s := range items {
		rows = append(rows, StockRow{
			Type:       s.Type,
			Name:       s.Name,
			Slots:      int64(s.Slots),
			SlotsLabel: fmt.Sprintf("%d unit", int64(s.Slots)),
			Level:      s.Level(),
		})
	}

	return StockView{
		Loading: src.Loading(),
		Status:  src.Phase(),
		Notice:  StockNotice,
		Items:   rows,
	}
}

// BuildProductsView renders product cards, adding markup to every price.
func BuildProductsView(src Source[catalog.Product], markup catalog.Amount) ProductsView {
	items := src.Items()
	cards := make([]ProductCard, 0, len(items))
	for _, p := range items {
		price := p.FinalPrice + markup
		cards = append(cards, ProductCard{
			Title:        fmt.Sprintf("%s (%s)", p.Name, p.Code),
			Name:         p.Name,
			Code:         p.Code,
			ProviderCode: p.ProviderCode,
			Description:  p.Description,
			Price:        price,
			PriceLabel:   catalog.FormatRupiah(price),
		})
	}

	return ProductsView{
		Loading: src.Loading(),
		Status:  src.Phase(),
		Items:   cards,
	}
}

// BuildAreaView highlights query in every filtered row.
func BuildAreaView(src Source[area.Record], query string, filtered area.Dataset) AreaView {
	rows := make([]AreaRow, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, AreaRow{
			Record:    r,
			Province:  area.Highlight(r.Province, query),
			Regency:   area.Highlight(r.Regency, query),
			AreaLabel: area.Highlight(r.AreaLabel, query),
		})
	}

	view := AreaView{
		Loading:     src.Loading(),
		Status:      src.Phase(),
		Query:       query,
		Placeholder: AreaPlaceholder,
		Total:       len(src.Items()),
		Items:       rows,
		Empty:       !src.Loading() && len(rows) == 0,
	}
	if view.Empty {
		view.EmptyMessage = AreaEmptyMessage
	}
	return view
}
