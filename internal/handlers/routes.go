package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-ecommerce-api/internal/catalog"
	"github.com/imrishuroy/go-ecommerce-api/internal/mongodb"
	"github.com/imrishuroy/go-ecommerce-api/internal/orders"
	"github.com/imrishuroy/go-ecommerce-api/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	Store mongodb.API
	Log   *slog.Logger
}

// RegisterRoutes mounts the store API under /api.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	products := catalog.NewService(cfg.Store)
	checkout := orders.NewService(cfg.Store)

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "E-commerce API"})
	})

	api.GET("/products", func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			serverError(c, cfg.Log, "list products failed", err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	api.GET("/products/:id", func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
				return
			}
			serverError(c, cfg.Log, "get product failed", err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	api.POST("/products", func(c *gin.Context) {
		var req validation.CreateProductRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}
		p, err := products.Create(c.Request.Context(), req)
		if err != nil {
			serverError(c, cfg.Log, "create product failed", err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	api.POST("/orders", func(c *gin.Context) {
		var req validation.CreateOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}
		o, err := checkout.Create(c.Request.Context(), req)
		if err != nil {
			serverError(c, cfg.Log, "create order failed", err)
			return
		}
		c.JSON(http.StatusOK, o)
	})

	api.GET("/orders/:id", func(c *gin.Context) {
		o, err := checkout.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, orders.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
				return
			}
			serverError(c, cfg.Log, "get order failed", err)
			return
		}
		c.JSON(http.StatusOK, o)
	})

	api.GET("/categories", func(c *gin.Context) {
		cats, err := products.Categories(c.Request.Context())
		if err != nil {
			serverError(c, cfg.Log, "list categories failed", err)
			return
		}
		if cats == nil {
			cats = []string{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": cats})
	})
}

func serverError(c *gin.Context, log *slog.Logger, msg string, err error) {
	log.Error(msg, "err", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
