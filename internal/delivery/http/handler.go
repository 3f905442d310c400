package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/nutriscancore/internal/catalog"
	"github.com/apper-canvas/nutriscancore/internal/domain"
	"github.com/apper-canvas/nutriscancore/internal/infrastructure/cache"
	"github.com/apper-canvas/nutriscancore/internal/usecase"
)

const (
	serviceName    = "nutriscan-core"
	serviceVersion = "1.0.0"
)

// CacheReporter exposes cache statistics to the health endpoint
type CacheReporter interface {
	Stats(ctx context.Context) (cache.Stats, error)
}

// Dependencies are the services the handlers call into
type Dependencies struct {
	Catalog           *catalog.Catalog
	Nutrition         *usecase.NutritionService
	Recommender       *usecase.RecommendationService
	History           *usecase.HistoryService
	Cache             CacheReporter // optional
	DefaultUnitSystem domain.UnitSystem
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog      *catalog.Catalog
	nutrition    *usecase.NutritionService
	recommender  *usecase.RecommendationService
	history      *usecase.HistoryService
	cache        CacheReporter
	defaultUnits domain.UnitSystem
}

// NewHandler creates a new HTTP handler
func NewHandler(deps Dependencies) *Handler {
	units := deps.DefaultUnitSystem
	if units == "" {
		units = domain.UnitMetric
	}
	return &Handler{
		catalog:      deps.Catalog,
		nutrition:    deps.Nutrition,
		recommender:  deps.Recommender,
		history:      deps.History,
		cache:        deps.Cache,
		defaultUnits: units,
	}
}

// HistoryEnabled reports whether profile and analysis routes are served
func (h *Handler) HistoryEnabled() bool {
	return h.history.Enabled()
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
		"catalog": gin.H{"foods": h.catalog.Len()},
		"history": h.HistoryEnabled(),
	}

	if h.cache != nil {
		stats, err := h.cache.Stats(c.Request.Context())
		if err != nil {
			log.Printf("[HEALTH] Cache stats unavailable: %v", err)
			body["status"] = "degraded"
			body["cache"] = gin.H{"error": "unavailable"}
		} else {
			body["cache"] = stats
		}
	}

	c.JSON(http.StatusOK, body)
}

// ListFoods lists catalog records, optionally filtered by free-text query,
// category and region. Filters combine; catalog order is kept.
func (h *Handler) ListFoods(c *gin.Context) {
	var category domain.Category
	if raw := c.Query("category"); raw != "" {
		var err error
		if category, err = domain.ParseCategory(raw); err != nil {
			respondError(c, err)
			return
		}
	}

	foods := h.catalog.SearchByCategory(category)
	if region := c.Query("region"); strings.TrimSpace(region) != "" {
		foods = intersect(foods, h.catalog.SearchByRegion(region))
	}
	if q := c.Query("q"); strings.TrimSpace(q) != "" {
		foods = intersect(foods, h.catalog.Search(q))
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods, "count": len(foods)})
}

// ListCategories lists the categories present in the catalog
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// GetFood returns one catalog record
func (h *Handler) GetFood(c *gin.Context) {
	food, ok := h.foodParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, food)
}

// GetFoodAnalysis returns the nutritional breakdown of one record
func (h *Handler) GetFoodAnalysis(c *gin.Context) {
	food, ok := h.foodParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, usecase.Breakdown(food))
}

// GetAlternatives returns healthier alternatives to one record
func (h *Handler) GetAlternatives(c *gin.Context) {
	food, ok := h.foodParam(c)
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"foodId":       food.ID,
		"alternatives": h.recommender.Alternatives(food, limit),
	})
}

type recognizeRequest struct {
	Query string `json:"query" binding:"required"`
}

// RecognizeFood resolves a free-text food name to a catalog record
func (h *Handler) RecognizeFood(c *gin.Context) {
	var req recognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	food, source, err := h.nutrition.Recognize(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"food": food, "source": source})
}

type bmiRequest struct {
	Profile    *domain.ProfileRequest `json:"profile" binding:"required"`
	UnitSystem string                 `json:"unitSystem"`
}

// CalculateBMI computes BMI and its band for a profile
func (h *Handler) CalculateBMI(c *gin.Context) {
	var req bmiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	profile, err := h.parseProfile(req.Profile, req.UnitSystem)
	if err != nil {
		respondError(c, err)
		return
	}

	bmi, err := h.recommender.BMI(profile)
	if err != nil {
		respondError(c, err)
		return
	}
	bmi = math.Round(bmi*10) / 10

	c.JSON(http.StatusOK, gin.H{
		"bmi":        bmi,
		"category":   usecase.ClassifyBMI(bmi),
		"unitSystem": profile.UnitSystem,
	})
}

// AnalyzeNutrition recognizes a food and evaluates it against a profile,
// given inline or by stored profile id
func (h *Handler) AnalyzeNutrition(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	ctx := c.Request.Context()

	var profile domain.UserProfile
	if req.ProfileID != "" {
		stored, err := h.history.GetProfile(ctx, req.ProfileID)
		if err != nil {
			respondError(c, err)
			return
		}
		profile = stored.Profile
		if req.UnitSystem != "" {
			if profile.UnitSystem, err = domain.ParseUnitSystem(req.UnitSystem, profile.UnitSystem); err != nil {
				respondError(c, err)
				return
			}
		}
	} else {
		var err error
		if profile, err = h.parseProfile(req.Profile, req.UnitSystem); err != nil {
			respondError(c, err)
			return
		}
	}

	analysis, err := h.nutrition.Analyze(ctx, req.Query, profile, req.ProfileID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// CreateProfile stores a new profile
func (h *Handler) CreateProfile(c *gin.Context) {
	var req domain.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	record, err := h.history.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListProfiles lists stored profiles, newest first
func (h *Handler) ListProfiles(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	profiles, err := h.history.ListProfiles(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

// GetProfile returns a stored profile
func (h *Handler) GetProfile(c *gin.Context) {
	record, err := h.history.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateProfile replaces a stored profile's fields
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return
	}

	record, err := h.history.UpdateProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteProfile removes a stored profile
func (h *Handler) DeleteProfile(c *gin.Context) {
	if err := h.history.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAnalyses lists stored analyses, optionally for one profile
func (h *Handler) ListAnalyses(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	analyses, err := h.history.ListAnalyses(c.Request.Context(), c.Query("profileId"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses, "count": len(analyses)})
}

// GetAnalysis returns a stored analysis
func (h *Handler) GetAnalysis(c *gin.Context) {
	record, err := h.history.GetAnalysis(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteAnalysis removes a stored analysis
func (h *Handler) DeleteAnalysis(c *gin.Context) {
	if err := h.history.DeleteAnalysis(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseProfile applies the request-level unit system, then the server
// default, to an inline profile
func (h *Handler) parseProfile(req *domain.ProfileRequest, unitSystem string) (domain.UserProfile, error) {
	units, err := domain.ParseUnitSystem(unitSystem, h.defaultUnits)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return usecase.ParseProfile(req, units)
}

func (h *Handler) foodParam(c *gin.Context) (domain.FoodRecord, bool) {
	id := c.Param("id")
	food, ok := h.catalog.ByID(id)
	if !ok {
		respondError(c, fmt.Errorf("%w: %s", domain.ErrFoodNotFound, id))
		return domain.FoodRecord{}, false
	}
	return food, true
}

// intersect keeps the records of foods that also appear in other
func intersect(foods, other []domain.FoodRecord) []domain.FoodRecord {
	ids := make(map[string]bool, len(other))
	for _, f := range other {
		ids[f.ID] = true
	}
	out := make([]domain.FoodRecord, 0, len(foods))
	for _, f := range foods {
		if ids[f.ID] {
			out = append(out, f)
		}
	}
	return out
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidRequest, name)
	}
	return n, nil
}

func pageParams(c *gin.Context) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit", 0); err != nil {
		return 0, 0, err
	}
	if offset, err = queryInt(c, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrFoodNotFound), errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrHistoryDisabled):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// respondError writes the error body. Internal errors are logged and
// replaced with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s failed (request %s): %v", c.Request.Method, c.Request.URL.Path, c.GetString(requestIDKey), err)
		message = "internal server error"
	}

	body := gin.H{"error": message}
	if id := c.GetString(requestIDKey); id != "" {
		body["requestId"] = id
	}
	c.JSON(status, body)
}
