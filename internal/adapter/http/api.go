package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/couchcryptid/symptom-advisor/internal/domain"
)

const (
	maxBodyBytes   = 1 << 20
	sessionHeader  = "X-Session-ID"
	defaultSession = "default"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply      string                  `json:"reply"`
	Intent     domain.Intent           `json:"intent"`
	Emergency  bool                    `json:"emergency"`
	Definition string                  `json:"definition,omitempty"`
	Speech     string                  `json:"speech"`
	Conditions []domain.ConditionScore `json:"conditions"`
}

type conditionResponse struct {
	Name        string   `json:"name"`
	Symptoms    []string `json:"symptoms"`
	Description *string  `json:"description,omitempty"`
	Precautions []string `json:"precautions,omitempty"`
	Severity    int      `json:"severity"`
}

type diaryRequest struct {
	Symptom  string `json:"symptom"`
	Severity int    `json:"severity"`
	Notes    string `json:"notes"`
}

type api struct {
	svc    Advisor
	logger *slog.Logger
}

func newRouter(svc Advisor, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		requestLogger(logger),
		gin.Recovery(),
		limitBodySize(maxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", sessionHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	a := &api{svc: svc, logger: logger}
	v1 := router.Group("/api/v1")
	v1.POST("/chat", a.chat)
	v1.GET("/conditions/:name", a.condition)
	v1.GET("/terms", a.terms)
	v1.GET("/emergency", a.emergency)
	v1.POST("/diary", a.addDiaryEntry)
	v1.GET("/diary", a.diaryEntries)

	return router
}

func (a *api) chat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply := a.svc.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, chatResponse{
		Reply:      reply.Text,
		Intent:     reply.Intent,
		Emergency:  reply.Emergency,
		Definition: reply.Definition,
		Speech:     domain.SpeechText(reply.Text),
		Conditions: reply.Scores(),
	})
}

func (a *api) condition(c *gin.Context) {
	kb := a.svc.KnowledgeBase()
	rec, ok := kb.Condition(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "condition not found"})
		return
	}
	c.JSON(http.StatusOK, conditionResponse{
		Name:        rec.Name,
		Symptoms:    rec.Symptoms,
		Description: rec.Description,
		Precautions: rec.Precautions,
		Severity:    domain.Score(rec.Symptoms, kb.Severity()),
	})
}

func (a *api) terms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terms": domain.SearchTerms(c.Query("q"))})
}

func (a *api) emergency(c *gin.Context) {
	c.JSON(http.StatusOK, domain.EmergencyGuidance())
}

func (a *api) addDiaryEntry(c *gin.Context) {
	var req diaryRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := a.svc.RecordSymptom(session(c), req.Symptom, req.Severity, req.Notes)
	if errors.Is(err, domain.ErrEmptySymptom) || errors.Is(err, domain.ErrInvalidSeverity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		a.logger.Error("record diary entry failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (a *api) diaryEntries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": a.svc.Diary(session(c)).Entries()})
}

func session(c *gin.Context) string {
	if s := strings.TrimSpace(c.GetHeader(sessionHeader)); s != "" {
		return s
	}
	return defaultSession
}

// bindJSON decodes the request body into v, writing a 400 or 413 response and
// returning false on failure.
func bindJSON(c *gin.Context, v any) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
	return false
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("api request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
