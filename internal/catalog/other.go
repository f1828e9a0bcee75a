package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/other_products.json
var otherProductsJson []byte

// LoadOtherProducts reads the locally bundled "other products" catalog. An
// empty path uses the copy embedded in the binary.
func LoadOtherProducts(path string) ([]Product, error) {
	contents := otherProductsJson
	if path != "" {
		var err error
		contents, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	var products []Product
	err := json.Unmarshal(contents, &products)
	if err != nil {
		return nil, fmt.Errorf("decode other products: %w", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}
