package dashboard

type Tab string

const (
	TabStock    Tab = "stock"
	TabProducts Tab = "products"
	TabArea     Tab = "area"
	TabOther    Tab = "other"
	TabBuy      Tab = "buy"
)

// DefaultTab is the tab shown when the page opens.
const DefaultTab = TabStock

type TabInfo struct {
	Key   Tab    `json:"key"`
	Label string `json:"label"`
}

// Tabs lists the tabs in display order.
var Tabs = []TabInfo{
	{Key: TabStock, Label: "📊 Cek Stok"},
	{Key: TabProducts, Label: "🛒 List Produk"},
	{Key: TabArea, Label: "📍 Cek Area"},
	{Key: TabOther, Label: "📝 Produk Lainnya"},
	{Key: TabBuy, Label: "💳 Beli"},
}

func ParseTab(key string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t.Key) == key {
			return t.Key, true
		}
	}
	return "", false
}

// View returns the part of the snapshot rendered by tab.
func (s Snapshot) View(tab Tab) (any, bool) {
	switch tab {
	case TabStock:
		return s.Stock, true
	case TabProducts:
		return s.Products, true
	case TabArea:
		return s.Area, true
	case TabOther:
		return s.OtherProducts, true
	case TabBuy:
		return s.Payment, true
	}
	return nil, false
}
