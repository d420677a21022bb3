// Package server exposes a dashboard session over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/etnz/nextfinance"
	"github.com/etnz/nextfinance/chart"
	"github.com/etnz/nextfinance/renderer"
)

// Server serves one session. Every client shares its data and charts.
type Server struct {
	session *nextfinance.Session
	charts  *chart.Cache
	log     *zap.Logger
	origins []string
	started time.Time
}

// New returns a server for session. An empty origins list allows any origin.
func New(session *nextfinance.Session, log *zap.Logger, origins []string) *Server {
	return &Server{
		session: session,
		charts:  chart.NewCache(chart.DefaultTTL),
		log:     log,
		origins: origins,
		started: time.Now(),
	}
}

// Handler builds the gin engine.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogging(s.log))
	router.Use(s.configureCORS())

	router.GET("/healthz", s.health)

	api := router.Group("/api")
	{
		api.GET("/portfolio", s.portfolio)
		api.GET("/news", s.news)
		api.GET("/state", s.state)

		stocks := api.Group("/stocks")
		{
			stocks.GET("", s.stocks)
			stocks.GET("/:id", s.stock)
			stocks.GET("/:id/chart", s.chart)
			stocks.POST("/:id/trade", s.trade)
		}
	}
	return router
}

// configureCORS returns a configured CORS middleware.
func (s *Server) configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(s.origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cors.New(corsConfig)
}

// health handles GET /healthz
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nextfinance",
		"session": s.session.ID,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

// portfolio handles GET /api/portfolio
func (s *Server) portfolio(c *gin.Context) {
	series := s.session.PortfolioSeries()
	points, _ := nextfinance.Project(series, s.session.Padding())
	c.JSON(http.StatusOK, gin.H{
		"portfolio": s.session.Portfolio(),
		"series":    series,
		"chart":     points,
	})
}

// news handles GET /api/news
func (s *Server) news(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.News())
}

// state handles GET /api/state
func (s *Server) state(c *gin.Context) {
	c.JSON(http.StatusOK, s.session.Store().State())
}

// stocks handles GET /api/stocks?q=
func (s *Server) stocks(c *gin.Context) {
	c.JSON(http.StatusOK, nextfinance.Filter(s.session.Stocks(), c.Query("q")))
}

// stock handles GET /api/stocks/:id
func (s *Server) stock(c *gin.Context) {
	st, err := s.session.Stock(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// chart handles GET /api/stocks/:id/chart?format=json|svg|png
func (s *Server) chart(c *gin.Context) {
	id := c.Param("id")
	st, err := s.session.Stock(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	series, err := s.session.StockSeries(id)
	if err != nil {
		s.fail(c, err)
		return
	}
	points, ok := nextfinance.Project(series, s.session.Padding())

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, gin.H{
			"stock":  id,
			"color":  st.Trend().Color(),
			"series": series,
			"chart":  points,
		})
	case "svg":
		c.Data(http.StatusOK, "image/svg+xml", []byte(renderer.SVG(points, ok, st.Trend().Color())))
	case "png":
		img, err := s.charts.Render(s.session.ID+"/"+id, func() ([]byte, error) {
			return chart.PNG(series, chart.Options{Title: st.Name + " (" + id + ")", Padding: s.session.Padding()})
		})
		if err != nil {
			s.fail(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", img)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown chart format %q", format)})
	}
}

// tradeRequest is the body of POST /api/stocks/:id/trade
type tradeRequest struct {
	Side   string `json:"side"`
	Shares string `json:"shares"`
}

// trade handles POST /api/stocks/:id/trade
func (s *Server) trade(c *gin.Context) {
	st, err := s.session.Stock(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ticket := nextfinance.NewTradeTicket(st)
	if req.Side != "" {
		side, err := nextfinance.ParseSide(req.Side)
		if err != nil {
			s.fail(c, err)
			return
		}
		ticket.SetSide(side)
	}
	ticket.SetAmount(req.Shares)

	order, err := ticket.Submit(s.session.Logger())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// fail maps domain errors to HTTP statuses.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, nextfinance.ErrUnknownStock):
		status = http.StatusNotFound
	case errors.Is(err, nextfinance.ErrInvalidTradeAmount), errors.Is(err, nextfinance.ErrInvalidSide):
		status = http.StatusBadRequest
	case errors.Is(err, chart.ErrNoData):
		status = http.StatusUnprocessableEntity
	default:
		s.log.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
