// Package server wires the HTTP surface of the estimator: the intake
// form, the estimate endpoints, and the health check.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rooftroops/estimator/internal/config"
	"github.com/rooftroops/estimator/internal/model"
)

// New builds the gin engine with middleware and all routes registered.
func New(cfg config.Config, profile model.CompanyProfile) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	h := NewEstimateHandler(cfg, profile)

	router.GET("/", h.UploadForm)
	router.POST("/estimate", h.CreateEstimatePDF)
	router.POST("/api/estimate", h.CreateEstimateJSON)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
