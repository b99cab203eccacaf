package middleware

import (
	"strings"

	"insight-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale stores the request language in the context. The dashboard sends a
// "lang" header; browsers calling directly only send Accept-Language.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		langHeader := c.GetHeader("lang")
		if langHeader == "" {
			langHeader = primaryLanguage(c.GetHeader("Accept-Language"))
		}

		lang := locale.ParseLang(langHeader)

		ctx := c.Request.Context()
		ctx = locale.SetLocaleToContext(ctx, lang)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// primaryLanguage returns the first language tag without region, "vi" for "vi-VN,en;q=0.8".
func primaryLanguage(header string) string {
	tag, _, _ := strings.Cut(header, ",")
	tag, _, _ = strings.Cut(tag, ";")
	tag, _, _ = strings.Cut(tag, "-")
	return strings.TrimSpace(tag)
}
