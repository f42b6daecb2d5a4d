// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/inventory-sales/internal/i18n"
)

// I18nMiddleware picks the first supported language from Accept-Language.
func I18nMiddleware(defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", negotiateLanguage(c.GetHeader("Accept-Language"), defaultLang))
		c.Next()
	}
}

// negotiateLanguage handles headers like "es-MX,es;q=0.9,en;q=0.8" by
// trying each entry's base language in header order.
func negotiateLanguage(header, defaultLang string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.Split(part, ";")[0])
		if tag == "" || tag == "*" {
			continue
		}
		fields := strings.FieldsFunc(tag, func(r rune) bool {
			return r == '-' || r == '_'
		})
		if len(fields) == 0 {
			continue
		}
		if base := strings.ToLower(fields[0]); i18n.Supported(base) {
			return base
		}
	}
	return defaultLang
}
