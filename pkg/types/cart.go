package types

// Variant is a named product option (color, size, ...) attached to a cart
// item. Name is not guaranteed unique; ID is.
type Variant struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CartItem is one purchasable line. Price, Grams and SubTotal are integer
// minor currency units; SubTotal is fixed at composition time and never
// recomputed.
type CartItem struct {
	ID          string    `json:"id" validate:"required"`
	Image       string    `json:"image" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required,gt=0"`
	Title       string    `json:"title" validate:"required"`
	Price       int       `json:"price"`
	Grams       int       `json:"grams"`
	SKU         string    `json:"sku" validate:"required"`
	VariantInfo []Variant `json:"variantInfo"`
	SubTotal    int       `json:"subTotal"`
}

// Cart is the payload handed to the checkout surface.
type Cart struct {
	Currency string     `json:"currency" validate:"required"`
	Items    []CartItem `json:"items" validate:"required,min=1,dive"`
}
