package cart

// Dataset keys recognized on triggering elements. Keys use the camelCase
// form the host page's dataset exposes for data-dola-* attributes.
const (
	KeyID       = "dolaId"
	KeyImage    = "dolaImage"
	KeyQuantity = "dolaQuantity"
	KeyTitle    = "dolaTitle"
	KeyPrice    = "dolaPrice"
	KeyWeight   = "dolaWeight"
	KeySKU      = "dolaSku"
	KeyCurrency = "dolaCurrency"

	// KeyCartEligible flags an element whose item joins the multi-item flow.
	KeyCartEligible = "dolaCart"

	// VariantPrefix marks dynamically named variant keys, e.g.
	// "dolaVariantColor" declares a variant named "Color".
	VariantPrefix = "dolaVariant"
)
