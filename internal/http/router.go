package api

import (
	stdhttp "net/http"

	intconfig "colectivo/internal/config"
	"colectivo/internal/domain"
	h "colectivo/internal/http/handlers"
	"colectivo/internal/http/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(hd.Metrics), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/health", hd.Health)
	if hd.Metrics != nil {
		r.GET("/metrics", gin.WrapH(hd.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.POST("/auth/login", hd.Login)

		intake := api.Group("/intake", middleware.APIKey(env.IntakeKey))
		intake.POST("/orders", hd.IntakeOrder)

		authed := api.Group("", middleware.AdminAuth(hd.AuthService("")), middleware.RequireRoles(domain.RoleAdmin, domain.RoleStaff))
		admin := middleware.RequireRoles(domain.RoleAdmin)

		authed.POST("/quotes", hd.Quote)

		orders := authed.Group("/orders")
		orders.GET("", hd.ListOrders)
		orders.POST("", hd.CreateOrder)
		orders.GET("/stats", hd.OrderStats)
		orders.GET("/:id", hd.GetOrder)
		orders.PUT("/:id", hd.UpdateOrder)
		orders.DELETE("/:id", hd.DeleteOrder)
		orders.POST("/:id/discount/toggle", hd.ToggleDiscount)
		orders.POST("/:id/payments", hd.AddPayment)
		orders.DELETE("/:id/payments", hd.ResetPayment)
		orders.GET("/:id/extra-text", hd.GetExtraText)
		orders.PUT("/:id/extra-text", hd.SetExtraText)
		orders.DELETE("/:id/extra-text", hd.ClearExtraText)
		orders.GET("/:id/voucher", hd.OrderVoucher)

		authed.POST("/vouchers/from-data", hd.VoucherFromData)

		prices := authed.Group("/service-prices")
		prices.GET("/services", hd.ListServices)
		prices.GET("", hd.ListPrices)
		prices.POST("", admin, hd.CreatePrice)
		prices.PUT("/:id", admin, hd.UpdatePrice)
		prices.DELETE("/:id", admin, hd.DeletePrice)

		svcs := authed.Group("/services", admin)
		svcs.POST("", hd.CreateService)
		svcs.PUT("/:id/active", hd.SetServiceActive)

		authed.POST("/seed", admin, hd.Seed)
	}

	return r
}
