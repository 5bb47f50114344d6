package handlers

import (
	"github.com/Aitik-official/walnut-leather-sub000/cart"
	"github.com/Aitik-official/walnut-leather-sub000/catalog"
	"github.com/Aitik-official/walnut-leather-sub000/locale"
	"github.com/Aitik-official/walnut-leather-sub000/taxonomy"
)

// Handler carries the in-process state the endpoints need: the session cart
// store, the unified catalog reader, the category store and the locale
// tables. The remaining Mongo collections are still reached through the
// database package.
type Handler struct {
	Cart     *cart.Store
	Catalog  catalog.Repository
	Taxonomy taxonomy.Store
	Locale   *locale.Table
	MediaDir string
}

func NewHandler(cartStore *cart.Store, cat catalog.Repository, tax taxonomy.Store, loc *locale.Table, mediaDir string) *Handler {
	return &Handler{
		Cart:     cartStore,
		Catalog:  cat,
		Taxonomy: tax,
		Locale:   loc,
		MediaDir: mediaDir,
	}
}
