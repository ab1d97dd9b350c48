package handlers

import (
	"context"
	"time"

	"colectivo/internal/http/middleware"
	"colectivo/internal/metrics"
	"colectivo/internal/pricing"
	"colectivo/internal/services"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds the long-lived dependencies. Services are value types
// built per request so each carries the request id into its logs.
type Handler struct {
	Catalog       services.CatalogStore
	Quotes        pricing.Catalog
	Cache         services.Invalidator
	Orders        services.OrderStore
	Users         services.UserStore
	Metrics       *metrics.Registry
	DB            Pinger
	JWTSecret     []byte
	JWTTTL        time.Duration
	AdminUser     string
	AdminPassword string
}

func (h *Handler) quoteCatalog() pricing.Catalog {
	if h.Quotes != nil {
		return h.Quotes
	}
	return h.Catalog
}

func (h *Handler) quoteService(c *gin.Context) services.QuoteService {
	return services.QuoteService{
		Catalog:   h.quoteCatalog(),
		Metrics:   h.Metrics,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) orderService(c *gin.Context) services.OrderService {
	return services.OrderService{
		Orders:    h.Orders,
		Quotes:    h.quoteService(c),
		Metrics:   h.Metrics,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{
		Store:     h.Catalog,
		Cache:     h.Cache,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h *Handler) voucherService(c *gin.Context) services.VoucherService {
	return services.VoucherService{
		Orders:    h.Orders,
		RequestID: middleware.GetRequestID(c),
	}
}

// AuthService is exported so the router can hand it to AdminAuth.
func (h *Handler) AuthService(reqID string) services.AuthService {
	return services.AuthService{
		Users:     h.Users,
		Secret:    h.JWTSecret,
		TTL:       h.JWTTTL,
		RequestID: reqID,
	}
}

func (h *Handler) seedService(c *gin.Context) services.SeedService {
	return services.SeedService{
		Catalog:       h.Catalog,
		Users:         h.Users,
		Cache:         h.Cache,
		AdminUser:     h.AdminUser,
		AdminPassword: h.AdminPassword,
		RequestID:     middleware.GetRequestID(c),
	}
}
