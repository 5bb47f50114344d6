package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/Aitik-official/walnut-leather-sub000/locale"
)

// GetLocales exposes the currency and language tables so the storefront can
// render pickers without hardcoding them. The optional lang parameter selects
// the UI strings: unknown languages fall back to the base language per key.
func (h *Handler) GetLocales(c echo.Context) error {
	languages := make([]string, 0, len(h.Locale.Strings))
	for lang := range h.Locale.Strings {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	lang := c.QueryParam("lang")
	if lang == "" {
		lang = locale.BaseLanguage
	}
	translations := make(map[string]string, len(h.Locale.Strings[locale.BaseLanguage]))
	for key := range h.Locale.Strings[locale.BaseLanguage] {
		translations[key] = h.Locale.Translate(key, lang)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"baseCurrency": locale.BaseCurrency,
		"currencies":   h.Locale.Currencies(),
		"baseLanguage": locale.BaseLanguage,
		"languages":    languages,
		"language":     lang,
		"translations": translations,
	})
}
