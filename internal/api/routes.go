package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"boundary-diagnostic/internal/render"
	"boundary-diagnostic/internal/scoring"
	"boundary-diagnostic/internal/store"
)

// Config defines server dependencies.
type Config struct {
	DBPath         string
	AllowedOrigins []string
	DisableStats   bool
	SilentDB       bool
}

// Server wires HTTP handlers with the classifier and the tally store.
type Server struct {
	db             *store.Database
	allowedOrigins []string
}

const requestIDKey = "request_id"

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	server := &Server{allowedOrigins: cfg.AllowedOrigins}

	if cfg.DisableStats {
		logrus.Info("classification tally store disabled via configuration")
		return server, nil
	}

	if cfg.DBPath == "" {
		return nil, errors.New("db path required")
	}
	db, err := store.Open(cfg.DBPath, cfg.SilentDB)
	if err != nil {
		return nil, err
	}
	server.db = db
	return server, nil
}

// Close releases the tally store if one is open.
func (s *Server) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog())
	r.HandleMethodNotAllowed = true

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		// Development default; production deployments set ALLOWED_ORIGINS.
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.POST("/diagnostic", s.handleDiagnostic)
		api.GET("/stats", s.handleStats)
	}

	return r, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"allowed_origins":   s.allowedOrigins,
		"stats_enabled":     s.db != nil,
		"institution_types": []string{"academic", "healthcare", "regulatory", "platform", "government", "corporate", "other"},
	})
}

func (s *Server) handleDiagnostic(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("institutionName"))
	institutionType := strings.TrimSpace(c.PostForm("institutionType"))
	stated := strings.TrimSpace(c.PostForm("statedBoundaries"))
	observed := strings.TrimSpace(c.PostForm("observedBehaviors"))
	concerns := c.PostForm("specificConcerns")

	if name == "" || institutionType == "" || stated == "" || observed == "" {
		s.renderError(c, http.StatusBadRequest, "validation_failed", errors.New("Missing required fields"))
		return
	}

	start := time.Now()
	result := scoring.Classify(stated, observed)

	fragment, err := render.Fragment(render.Input{
		InstitutionName:  name,
		InstitutionType:  institutionType,
		SpecificConcerns: concerns,
	}, result)
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "internal_error", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"request_id":       c.GetString(requestIDKey),
		"institution_type": institutionType,
		"tier":             result.Tier,
		"duration_ms":      time.Since(start).Milliseconds(),
	}).Info("diagnostic classified")

	if s.db != nil {
		if err := s.db.RecordClassification(institutionType, string(result.Tier)); err != nil {
			logrus.WithError(err).Warn("record classification tally")
		}
	}

	c.JSON(http.StatusOK, DiagnosticResponse{Diagnostic: fragment})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, StatsResponse{Items: []TallyDTO{}})
		return
	}

	rows, err := s.db.ListTallies()
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "internal_error", err)
		return
	}
	total, err := s.db.TotalClassifications()
	if err != nil {
		s.renderError(c, http.StatusInternalServerError, "internal_error", err)
		return
	}

	dtos := make([]TallyDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, TallyFromModel(row))
	}
	c.JSON(http.StatusOK, StatsResponse{Items: dtos, Total: total})
}

func (s *Server) renderError(c *gin.Context, status int, code string, err error) {
	c.JSON(status, gin.H{"error": code, "message": err.Error()})
}

func requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		start := time.Now()

		c.Next()

		logrus.WithFields(logrus.Fields{
			"request_id":  id,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}
