package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Product struct {
	Name         string `json:"nama_produk"`
	Code         string `json:"kode_produk"`
	ProviderCode string `json:"kode_provider"`
	Description  string `json:"deskripsi"`
	FinalPrice   Amount `json:"harga_final"`
}

type StockItem struct {
	Type  string `json:"type"`
	Name  string `json:"nama"`
	Slots Amount `json:"sisa_slot"`
}

// Amount is a whole number that the upstream APIs sometimes send as a JSON
// number and sometimes as a numeric string. Anything unparseable, including
// null and "", decodes to 0 instead of failing the whole list.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(math.Round(f))
	return nil
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}
