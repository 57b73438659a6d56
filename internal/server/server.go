// Package server exposes the calculation engine over a JSON HTTP API. It
// owns everything the engine deliberately does not: raw-input validation,
// configuration resolution, and result caching.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eoselia/mortgage-engine/internal/cache"
	"github.com/eoselia/mortgage-engine/internal/config"
	"github.com/eoselia/mortgage-engine/internal/engine"
	"github.com/eoselia/mortgage-engine/pkg/validation"
)

// Server wires the engine, program configuration, and cache behind the HTTP
// handlers.
type Server struct {
	logger    *zap.Logger
	conf      *config.Configuration
	evaluator *engine.Evaluator
	cache     cache.Cache
	version   string
}

// New constructs a Server. A nil logger is replaced with a no-op logger and
// a nil cache with an in-memory one.
func New(logger *zap.Logger, conf *config.Configuration, resultCache cache.Cache, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if resultCache == nil {
		resultCache = cache.NewMemory()
	}
	if version == "" {
		version = "dev"
	}
	return &Server{
		logger:    logger,
		conf:      conf,
		evaluator: engine.NewEvaluator(logger),
		cache:     resultCache,
		version:   version,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.POST("/api/calculate", s.handleCalculate)
	router.GET("/api/regions", s.handleRegions)
	router.GET("/api/categories", s.handleCategories)
	router.GET("/api/version", s.handleVersion)
	router.GET("/healthz", s.handleHealth)

	return router
}

// requestLogger tags every request with an ID and writes one access log line.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		start := time.Now()

		c.Next()

		s.logger.Info("request handled",
			zap.String("op", "server.requestLogger"),
			zap.String("requestID", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// calculateRequest is the wire shape of one calculation request; it maps
// one-to-one onto engine.Input.
type calculateRequest struct {
	Category      string  `json:"category" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	HouseholdSize int     `json:"householdSize" binding:"required"`
	PropertyKind  string  `json:"propertyKind" binding:"required"`
	Region        string  `json:"region" binding:"required"`
	Settlement    string  `json:"settlement" binding:"required"`
	Area          float64 `json:"area" binding:"required"`
	TotalPrice    float64 `json:"totalPrice" binding:"required"`
	BuildingAge   int     `json:"buildingAge"`
	TermYears     int     `json:"termYears" binding:"required"`
}

func (r calculateRequest) toInput() engine.Input {
	return engine.Input{
		Category:      r.Category,
		Age:           r.Age,
		HouseholdSize: r.HouseholdSize,
		PropertyKind:  engine.PropertyKind(r.PropertyKind),
		Region:        r.Region,
		Settlement:    engine.SettlementType(r.Settlement),
		Area:          r.Area,
		TotalPrice:    r.TotalPrice,
		BuildingAge:   r.BuildingAge,
		TermYears:     r.TermYears,
	}
}

func (s *Server) handleCalculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	input := req.toInput()
	if err := validation.ValidateInput(input); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	programConfig, err := s.conf.Resolve(input.Category, input.Region)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	key, err := cache.Key(input, programConfig)
	if err == nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.logger.Debug("serving cached result",
				zap.String("op", "server.handleCalculate"),
				zap.String("key", key),
			)
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	result := s.evaluator.Evaluate(input, programConfig)

	encoded, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("failed to encode result",
			zap.String("op", "server.handleCalculate"),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to encode result"})
		return
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			// Cache failures are not fatal; the result is still returned.
			s.logger.Warn("failed to cache result",
				zap.String("op", "server.handleCalculate"),
				zap.Error(err),
			)
		}
	}

	c.Data(http.StatusOK, "application/json", encoded)
}

type regionResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	PricePerSqM float64 `json:"pricePerSqM"`
	Frontline   bool    `json:"frontline"`
}

func (s *Server) handleRegions(c *gin.Context) {
	regions := make([]regionResponse, 0, len(s.conf.Program.Regions))
	for _, region := range s.conf.Program.Regions {
		regions = append(regions, regionResponse{
			Code:        region.Code,
			Name:        region.Name,
			PricePerSqM: region.PricePerSqM,
			Frontline:   s.conf.IsFrontlineRegion(region.Code),
		})
	}
	c.JSON(http.StatusOK, regions)
}

type categoryResponse struct {
	Code                    string  `json:"code"`
	Name                    string  `json:"name"`
	RatePeriod1             float64 `json:"ratePeriod1"`
	RatePeriod2             float64 `json:"ratePeriod2"`
	MaxBuildingAge          int     `json:"maxBuildingAge"`
	FrontlineMaxBuildingAge int     `json:"frontlineMaxBuildingAge"`
}

func (s *Server) handleCategories(c *gin.Context) {
	categories := make([]categoryResponse, 0, len(s.conf.Program.Categories))
	for _, category := range s.conf.Program.Categories {
		categories = append(categories, categoryResponse{
			Code:                    category.Code,
			Name:                    category.Name,
			RatePeriod1:             category.RatePeriod1,
			RatePeriod2:             category.RatePeriod2,
			MaxBuildingAge:          category.MaxBuildingAge,
			FrontlineMaxBuildingAge: category.FrontlineMaxBuildingAge,
		})
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
