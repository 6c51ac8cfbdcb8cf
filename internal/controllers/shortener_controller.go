package controllers

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"shortr/internal/models"
	"shortr/internal/repository"
	"shortr/internal/service"
)

//go:embed landing.html
var landingPage []byte

type ShortenerController struct {
	urlService service.URLService
	logger     *zap.Logger
}

func NewShortenerController(urlService service.URLService, logger *zap.Logger) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
		logger:     logger,
	}
}

// Landing handles GET / - serves the static landing page
func (sc *ShortenerController) Landing(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", landingPage)
}

// Health handles GET /health
func (sc *ShortenerController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateShortURL handles POST / - creates or finds the mapping for the
// submitted URL and answers with the full short link.
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.ShortenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
			Errors: validationErrors(err),
		})
		return
	}

	shortURL, err := sc.urlService.Shorten(c.Request.Context(), req.URL)
	if err != nil {
		sc.logger.Error("failed to create mapping", zap.String("url", req.URL), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.String(http.StatusCreated, shortURL)
}

// RedirectToURL handles GET /:id - redirects to the original URL
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	id := c.Param("id")

	url, err := sc.urlService.Resolve(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		sc.logger.Error("failed to resolve identifier", zap.String("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.Redirect(http.StatusFound, url)
}

// GetURLStats handles GET /api/v1/stats/:id - reports the hit counter
func (sc *ShortenerController) GetURLStats(c *gin.Context) {
	id := c.Param("id")

	stats, err := sc.urlService.Stats(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		sc.logger.Error("failed to get stats", zap.String("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// validationErrors maps a binding failure to the per-field error list clients
// receive.
func validationErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, models.FieldError{
				Field:  strings.ToLower(fe.Field()),
				Reason: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
		return out
	}
	return []models.FieldError{{Field: "url", Reason: err.Error()}}
}
