package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/wealthsync_backend/internal/apperrors"
	portssvc "github.com/SscSPs/wealthsync_backend/internal/core/ports/services"
	"github.com/SscSPs/wealthsync_backend/internal/dto"
	"github.com/SscSPs/wealthsync_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// locationHandler serves the continent, country and city listings.
type locationHandler struct {
	locationService portssvc.LocationReaderSvc
}

func newLocationHandler(ls portssvc.LocationReaderSvc) *locationHandler {
	return &locationHandler{
		locationService: ls,
	}
}

// RegisterLocationRoutes registers the location lookup routes on rg.
func RegisterLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationReaderSvc) {
	h := newLocationHandler(locationService)

	rg.GET("/continents", h.listContinents)
	rg.GET("/countries/:continent", h.listCountries)
	rg.GET("/cities/:continent/:country", h.listCities)
}

// listContinents godoc
// @Summary List continents
// @Description Lists every continent covered by the economic data, sorted by name
// @Tags locations
// @Produce  json
// @Success 200 {array} dto.LocationResponse
// @Failure 500 {object} map[string]string "Failed to list continents"
// @Router /continents [get]
func (h *locationHandler) listContinents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	continents, err := h.locationService.ListContinents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list continents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list continents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLocationResponse(continents))
}

// listCountries godoc
// @Summary List countries of a continent
// @Description Lists the countries of a continent with their local currency, sorted by name
// @Tags locations
// @Produce  json
// @Param   continent path string true "Continent name (case-insensitive)"
// @Success 200 {array} dto.CountryResponse
// @Failure 404 {object} map[string]string "Continent not found"
// @Failure 500 {object} map[string]string "Failed to list countries"
// @Router /countries/{continent} [get]
func (h *locationHandler) listCountries(c *gin.Context) {
	continent := c.Param("continent")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("continent", continent))

	countries, err := h.locationService.ListCountries(c.Request.Context(), continent)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Continent not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Continent not found"})
			return
		}
		logger.Error("Failed to list countries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list countries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCountryResponse(countries))
}

// listCities godoc
// @Summary List cities of a country
// @Description Lists the cities with cost adjustments for a country, sorted by name
// @Tags locations
// @Produce  json
// @Param   continent path string true "Continent name (case-insensitive)"
// @Param   country path string true "Country name (case-insensitive)"
// @Success 200 {array} dto.LocationResponse
// @Failure 404 {object} map[string]string "Country or continent not found"
// @Failure 500 {object} map[string]string "Failed to list cities"
// @Router /cities/{continent}/{country} [get]
func (h *locationHandler) listCities(c *gin.Context) {
	continent := c.Param("continent")
	country := c.Param("country")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("continent", continent),
		slog.String("country", country),
	)

	cities, err := h.locationService.ListCities(c.Request.Context(), continent, country)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Country or continent not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Country or continent not found"})
			return
		}
		logger.Error("Failed to list cities", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cities"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLocationResponse(cities))
}
