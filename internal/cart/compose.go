package cart

import "github.com/dolapay/embed-sdk/pkg/types"

// ComposeItem builds a single cart line from the element's dataset. Field
// checks run in fixed order (id, image, quantity, title, price, grams,
// sku) and the first failure wins; no partial item is ever returned.
// SubTotal is fixed here and never recomputed.
func ComposeItem(dataset map[string]string) (*types.CartItem, error) {
	id, err := RequireField(dataset[KeyID], "Invalid product Id")
	if err != nil {
		return nil, err
	}
	image, err := RequireField(dataset[KeyImage], "Invalid product Image")
	if err != nil {
		return nil, err
	}
	quantityRaw, err := RequireField(dataset[KeyQuantity], "Invalid quantity")
	if err != nil {
		return nil, err
	}
	quantity, err := parseIntField(quantityRaw, KeyQuantity)
	if err != nil {
		return nil, err
	}
	title, err := RequireField(dataset[KeyTitle], "Invalid title")
	if err != nil {
		return nil, err
	}
	priceRaw, err := RequireField(dataset[KeyPrice], "Invalid price")
	if err != nil {
		return nil, err
	}
	price, err := parseIntField(priceRaw, KeyPrice)
	if err != nil {
		return nil, err
	}
	weightRaw, err := RequireField(dataset[KeyWeight], "Invalid weight")
	if err != nil {
		return nil, err
	}
	grams, err := parseIntField(weightRaw, KeyWeight)
	if err != nil {
		return nil, err
	}
	sku, err := RequireField(dataset[KeySKU], "Invalid sku")
	if err != nil {
		return nil, err
	}

	return &types.CartItem{
		ID:          id,
		Image:       image,
		Quantity:    quantity,
		Title:       title,
		Price:       price,
		Grams:       grams,
		SKU:         sku,
		VariantInfo: []types.Variant{},
		SubTotal:    price * quantity,
	}, nil
}
