package dashboard

import (
	"errors"
	"testing"

	"diistore/internal/area"
	"diistore/internal/catalog"

	"github.com/stretchr/testify/require"
)

func TestSourceTransitions(t *testing.T) {
	var s Source[int]
	require.Equal(t, "idle", s.Phase())

	_, err := s.resolve([]int{1})
	require.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.fail(errors.New("boom"))
	require.ErrorIs(t, err, ErrInvalidTransition)

	s, err = s.begin(false)
	require.NoError(t, err)
	require.True(t, s.Loading())
	require.Equal(t, "loading", s.Phase())
	require.Empty(t, s.Items())

	_, err = s.begin(false)
	require.ErrorIs(t, err, ErrInvalidTransition)

	s, err = s.resolve(nil)
	require.NoError(t, err)
	require.Equal(t, StatusLoaded, s.Status)
	require.Equal(t, "empty", s.Phase())
	require.NotNil(t, s.Items())

	_, err = s.begin(false)
	require.ErrorIs(t, err, ErrInvalidTransition)

	s, err = s.begin(true)
	require.NoError(t, err)
	s, err = s.fail(errors.New("timeout"))
	require.NoError(t, err)
	require.Equal(t, "failed", s.Phase())
	require.Empty(t, s.Items())
	require.EqualError(t, s.Err, "timeout")

	s, err = s.begin(true)
	require.NoError(t, err)
	s, err = s.resolve([]int{4, 2})
	require.NoError(t, err)
	require.Equal(t, "populated", s.Phase())
	require.Nil(t, s.Err)
	require.Equal(t, []int{4, 2}, s.Items())
}

func TestBuildStockView(t *testing.T) {
	src := Source[catalog.StockItem]{
		Status: StatusLoaded,
		Value: []catalog.StockItem{
			{Type: "bekasan", Name: "A", Slots: 0},
			{Type: "bulanan", Name: "B", Slots: 120},
			{Type: "bulanan", Name: "C", Slots: 12},
			{Type: "bekasan", Name: "D", Slots: 120},
		},
	}

	view := BuildStockView(src)
	require.False(t, view.Loading)
	require.Equal(t, StockNotice, view.Notice)
	require.Equal(t, []StockRow{
		{Type: "bulanan", Name: "B", Slots: 120, SlotsLabel: "120 unit", Level: catalog.StockAvailable},
		{Type: "bekasan", Name: "D", Slots: 120, SlotsLabel: "120 unit", Level: catalog.StockAvailable},
		{Type: "bulanan", Name: "C", Slots: 12, SlotsLabel: "12 unit", Level: catalog.StockLow},
		{Type: "bekasan", Name: "A", Slots: 0, SlotsLabel: "0 unit", Level: catalog.StockEmpty},
	}, view.Items)

	// the source order is left untouched
	require.Equal(t, "A", src.Value[0].Name)
}

func TestBuildStockViewWhileLoading(t *testing.T) {
	src := Source[catalog.StockItem]{
		Status:  StatusLoading,
		Value:   []catalog.StockItem{{Name: "stale", Slots: 3}},
		Pending: 1,
	}
	view := BuildStockView(src)
	require.True(t, view.Loading)
	require.Empty(t, view.Items)
	require.Equal(t, "loading", view.Status)
}

func TestBuildAreaViewEmpty(t *testing.T) {
	src := Source[area.Record]{Status: StatusLoaded, Value: []area.Record{{Province: "Bali"}}}
	view := BuildAreaView(src, "papua", area.Dataset{})
	require.True(t, view.Empty)
	require.Equal(t, AreaEmptyMessage, view.EmptyMessage)
	require.Equal(t, 1, view.Total)
	require.Equal(t, AreaPlaceholder, view.Placeholder)
}

func TestTabs(t *testing.T) {
	snap := Snapshot{Payment: BuildPaymentView(PaymentConfig{ContactUrl: "https://wa.me/620000"})}

	for _, info := range Tabs {
		tab, ok := ParseTab(string(info.Key))
		require.True(t, ok)
		_, ok = snap.View(tab)
		require.True(t, ok, info.Key)
	}

	_, ok := ParseTab("checkout")
	require.False(t, ok)
	_, ok = snap.View(Tab("checkout"))
	require.False(t, ok)

	require.Equal(t, TabStock, DefaultTab)

	view, _ := snap.View(TabBuy)
	payment := view.(PaymentView)
	require.Equal(t, "/qr.png", payment.QRUrl)
	require.Equal(t, "QRIS_DIISTORE.png", payment.QRDownloadName)
	require.Equal(t, "https://wa.me/620000", payment.ContactUrl)
}

func TestPaymentNormalize(t *testing.T) {
	testCases := []struct {
		qrUrl    string
		expected string
	}{
		{"", "/qr.png"},
		{"/", "/qr.png"},
		{"qr.png", "/qr.png"},
		{"/api", "/qr.png"},
		{"/api/dashboard", "/qr.png"},
		{"/static/{file}", "/qr.png"},
		{"/qr.png?v=2", "/qr.png"},
		{"/bayar/qris.png", "/bayar/qris.png"},
		{"/apis.png", "/apis.png"},
	}
	for _, tc := range testCases {
		cfg := PaymentConfig{QRUrl: tc.qrUrl}.Normalize()
		require.Equal(t, tc.expected, cfg.QRUrl, tc.qrUrl)
		require.Equal(t, "QRIS_DIISTORE.png", cfg.QRDownloadName)
	}
}
