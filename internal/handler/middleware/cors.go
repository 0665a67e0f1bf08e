package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"bookify/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware applies the configured policy. Browsers always need to
// send Idempotency-Key on bookings and read back the request id, so those
// headers are added even when the configuration omits them.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withDefaults(cfg.AllowMethods, http.MethodGet, http.MethodPost, http.MethodDelete),
		AllowHeaders:     withDefaults(cfg.AllowHeaders, "Content-Type", "Authorization", "Idempotency-Key"),
		ExposeHeaders:    withDefaults(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("cors configured",
		"allow_origins", corsCfg.AllowOrigins,
		"allow_headers", corsCfg.AllowHeaders,
		"credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

func withDefaults(values []string, required ...string) []string {
	out := slices.Clone(values)
	for _, r := range required {
		if !slices.ContainsFunc(out, func(v string) bool { return http.CanonicalHeaderKey(v) == http.CanonicalHeaderKey(r) }) {
			out = append(out, r)
		}
	}
	return out
}
