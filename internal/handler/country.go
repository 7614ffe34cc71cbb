package handler

import (
	"enrollhub/internal/country"
	"enrollhub/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// CountryHandler handles country lookups for the enrollment form
type CountryHandler struct {
	resolver *country.Resolver
}

// NewCountryHandler creates a new CountryHandler instance
func NewCountryHandler(resolver *country.Resolver) *CountryHandler {
	return &CountryHandler{resolver: resolver}
}

// Search godoc
// @Summary Search countries
// @Description Case-insensitive substring search; empty query returns all
// @Tags countries
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} dto.CountryResponse
// @Router /countries [get]
func (h *CountryHandler) Search(c *fiber.Ctx) error {
	records := h.resolver.Search(c.Query("q"))
	out := make([]dto.CountryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, mapCountry(r))
	}
	return c.JSON(out)
}

// Default godoc
// @Summary Get the preselected country
// @Description Returns the default country and its dial prefix
// @Tags countries
// @Produce json
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /countries/default [get]
func (h *CountryHandler) Default(c *fiber.Ctx) error {
	record, ok := h.resolver.Default()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no default country configured")
	}
	return c.JSON(mapCountry(record))
}

func mapCountry(r country.Record) dto.CountryResponse {
	return dto.CountryResponse{
		Name:     r.Name,
		ISO2:     r.ISO2,
		DialCode: r.DialCode,
		Prefix:   country.Prefix(r),
	}
}
