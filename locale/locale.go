// Package locale provides the currency conversion and UI translation
// tables. Pure lookups over injected tables; unknown codes fall back to the
// base currency/language.
package locale

import "math"

const (
	BaseCurrency = "USD"
	BaseLanguage = "en"
)

type Table struct {
	// Rates maps currency code -> multiplier from the USD base price.
	Rates map[string]float64
	// Strings maps language code -> UI string key -> translation.
	Strings map[string]map[string]string
}

// Default returns the table the storefront ships with.
func Default() *Table {
	return &Table{
		Rates: map[string]float64{
			"USD": 1,
			"EUR": 0.92,
			"GBP": 0.79,
			"INR": 83.2,
		},
		Strings: map[string]map[string]string{
			"en": {
				"cart":         "Cart",
				"checkout":     "Checkout",
				"wishlist":     "Wishlist",
				"addToCart":    "Add to cart",
				"outOfStock":   "Out of stock",
				"freeShipping": "Free shipping",
			},
			"es": {
				"cart":       "Carrito",
				"checkout":   "Pagar",
				"wishlist":   "Favoritos",
				"addToCart":  "Añadir al carrito",
				"outOfStock": "Agotado",
			},
			"fr": {
				"cart":       "Panier",
				"checkout":   "Paiement",
				"wishlist":   "Favoris",
				"addToCart":  "Ajouter au panier",
				"outOfStock": "Épuisé",
			},
		},
	}
}

// Convert turns a base (USD) amount into the requested currency, rounded to
// two decimals. Unknown codes return the amount unchanged.
func (t *Table) Convert(amount float64, code string) float64 {
	rate, ok := t.Rates[code]
	if !ok {
		rate = 1
	}
	return math.Round(amount*rate*100) / 100
}

// Currencies lists the supported currency codes.
func (t *Table) Currencies() []string {
	out := make([]string, 0, len(t.Rates))
	for code := range t.Rates {
		out = append(out, code)
	}
	return out
}

// Translate looks up a UI string, falling back to the base language and
// finally the key itself.
func (t *Table) Translate(key, lang string) string {
	if strings, ok := t.Strings[lang]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	if s, ok := t.Strings[BaseLanguage][key]; ok {
		return s
	}
	return key
}
