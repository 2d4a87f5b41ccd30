package controllers

import (
	"Backend-PlanujSmeny/src/services/catalog"
	"Backend-PlanujSmeny/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type LocationController struct {
	Catalog catalog.Source
}

func NewLocationController(source catalog.Source) *LocationController {
	return &LocationController{Catalog: source}
}

// GetLocations godoc
// @Summary      List locations with their rosters
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Location
// @Router       /api/locations [get]
func (lc *LocationController) GetLocations(c *fiber.Ctx) error {
	locations, err := lc.Catalog.Locations(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(locations)
}

// GetLocationByID godoc
// @Summary      Get one location
// @Tags         locations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Location ID"
// @Success      200  {object}  models.Location
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/locations/{id} [get]
func (lc *LocationController) GetLocationByID(c *fiber.Ctx) error {
	loc, err := lc.Catalog.Location(c.UserContext(), c.Params("id"))
	if errors.Is(err, catalog.ErrLocationNotFound) {
		return utils.HandleErrorCode(c, fiber.StatusNotFound, "LOCATION_NOT_FOUND", "Location not found")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(loc)
}
