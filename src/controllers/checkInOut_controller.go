package controllers

import (
	"Backend-PlanujSmeny/src/jobs"
	"Backend-PlanujSmeny/src/models"
	"Backend-PlanujSmeny/src/services/catalog"
	"Backend-PlanujSmeny/src/services/checkin"
	"Backend-PlanujSmeny/src/utils"
	"errors"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const msgPickLocation = "Please pick a location before starting your shift."

// SelectLocationRequest body ของการเลือกสาขา
type SelectLocationRequest struct {
	LocationID string `json:"locationId" form:"locationId" validate:"required"`
}

type CheckInController struct {
	Sessions     *checkin.Store
	Catalog      catalog.Source
	Loc          *time.Location
	OverrunAfter time.Duration
}

func NewCheckInController(sessions *checkin.Store, source catalog.Source, loc *time.Location, overrunAfter time.Duration) *CheckInController {
	return &CheckInController{
		Sessions:     sessions,
		Catalog:      source,
		Loc:          loc,
		OverrunAfter: overrunAfter,
	}
}

func (cc *CheckInController) machine(c *fiber.Ctx) *checkin.Machine {
	sessionID, _ := c.Locals("sessionId").(string)
	return cc.Sessions.GetOrOpen(sessionID)
}

func (cc *CheckInController) currentUser(c *fiber.Ctx) models.User {
	username, _ := c.Locals("username").(string)
	role, _ := c.Locals("role").(string)
	return models.User{Username: username, Role: models.UserRole(role)}
}

func (cc *CheckInController) status(c *fiber.Ctx, m *checkin.Machine) error {
	locations, err := cc.Catalog.Locations(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(checkin.Status(locations, m.State(), cc.Loc))
}

// transitionError maps state machine errors onto HTTP responses.
func transitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, checkin.ErrNoLocationSelected):
		return utils.HandleErrorCode(c, fiber.StatusConflict, "NO_LOCATION_SELECTED", msgPickLocation)
	case errors.Is(err, checkin.ErrShiftAlreadyRunning):
		return utils.HandleErrorCode(c, fiber.StatusConflict, "SHIFT_RUNNING", "Your shift is already running.")
	case errors.Is(err, checkin.ErrShiftNotRunning):
		return utils.HandleErrorCode(c, fiber.StatusConflict, "SHIFT_NOT_RUNNING", "You have no running shift to end.")
	case errors.Is(err, checkin.ErrNothingPending):
		return utils.HandleErrorCode(c, fiber.StatusConflict, "NOTHING_PENDING", "No location is waiting for confirmation.")
	case errors.Is(err, catalog.ErrLocationNotFound):
		return utils.HandleErrorCode(c, fiber.StatusNotFound, "LOCATION_NOT_FOUND", "Location not found")
	default:
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func (cc *CheckInController) selectLocation(c *fiber.Ctx, id string) (bool, error) {
	if _, err := cc.Catalog.Location(c.UserContext(), id); err != nil {
		return false, err
	}
	return cc.machine(c).SelectLocation(id), nil
}

func (cc *CheckInController) startShift(c *fiber.Ctx) error {
	m := cc.machine(c)
	if err := m.StartShift(); err != nil {
		return err
	}
	st := m.State()
	sessionID, _ := c.Locals("sessionId").(string)
	jobs.ScheduleShiftOverrun(jobs.ShiftOverrunPayload{
		SessionID: sessionID,
		Username:  cc.currentUser(c).Username,
		StartedAt: *st.StartedAt,
	}, cc.OverrunAfter)
	log.Printf("🟢 [StartShift] %s at %s", cc.currentUser(c).Username, *st.ShiftLocationID)
	return nil
}

func (cc *CheckInController) endShift(c *fiber.Ctx) error {
	if err := cc.machine(c).EndShift(); err != nil {
		return err
	}
	log.Printf("🔴 [EndShift] %s", cc.currentUser(c).Username)
	return nil
}

// GetCheckinStatus godoc
// @Summary      Get the current check-in state
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CheckInStatus
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/checkin [get]
func (cc *CheckInController) GetCheckinStatus(c *fiber.Ctx) error {
	return cc.status(c, cc.machine(c))
}

// SelectLocation godoc
// @Summary      Click a location in the picker
// @Description  Re-selecting the current location while idle clears it; otherwise the location waits for confirmation.
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body SelectLocationRequest true "Location"
// @Success      200  {object}  models.CheckInStatus
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/checkin/select [post]
func (cc *CheckInController) SelectLocation(c *fiber.Ctx) error {
	var req SelectLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, err := cc.selectLocation(c, req.LocationID); err != nil {
		return transitionError(c, err)
	}
	return cc.status(c, cc.machine(c))
}

// ConfirmLocation godoc
// @Summary      Confirm the pending location
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CheckInStatus
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/checkin/confirm [post]
func (cc *CheckInController) ConfirmLocation(c *fiber.Ctx) error {
	m := cc.machine(c)
	if err := m.ConfirmLocation(); err != nil {
		return transitionError(c, err)
	}
	return cc.status(c, m)
}

// CancelLocation godoc
// @Summary      Close the confirmation popup
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CheckInStatus
// @Router       /api/checkin/cancel [post]
func (cc *CheckInController) CancelLocation(c *fiber.Ctx) error {
	m := cc.machine(c)
	m.CancelLocation()
	return cc.status(c, m)
}

// StartShift godoc
// @Summary      Start the shift at the selected location
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CheckInStatus
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/checkin/start [post]
func (cc *CheckInController) StartShift(c *fiber.Ctx) error {
	if err := cc.startShift(c); err != nil {
		return transitionError(c, err)
	}
	return cc.status(c, cc.machine(c))
}

// EndShift godoc
// @Summary      End the running shift
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.CheckInStatus
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/checkin/end [post]
func (cc *CheckInController) EndShift(c *fiber.Ctx) error {
	if err := cc.endShift(c); err != nil {
		return transitionError(c, err)
	}
	return cc.status(c, cc.machine(c))
}

// GetDashboard godoc
// @Summary      Everything the dashboard renders
// @Tags         checkin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.DashboardView
// @Router       /api/dashboard [get]
func (cc *CheckInController) GetDashboard(c *fiber.Ctx) error {
	view, err := cc.dashboard(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(view)
}

func (cc *CheckInController) dashboard(c *fiber.Ctx) (models.DashboardView, error) {
	locations, err := cc.Catalog.Locations(c.UserContext())
	if err != nil {
		return models.DashboardView{}, err
	}
	return checkin.Dashboard(locations, cc.machine(c).State(), cc.currentUser(c), cc.Loc), nil
}

// ---- form posts from the dashboard page ----

// notice keys carried in the dashboard redirect; only these texts are ever shown.
const (
	noticePickLocation    = "pick-location"
	noticeLocationMissing = "location-not-found"
	noticeNothingPending  = "nothing-pending"
	noticeShiftRunning    = "shift-running"
	noticeShiftNotRunning = "shift-not-running"
	noticeFailed          = "failed"
)

var notices = map[string]string{
	noticePickLocation:    msgPickLocation,
	noticeLocationMissing: "Location not found.",
	noticeNothingPending:  "No location is waiting for confirmation.",
	noticeShiftRunning:    "Your shift is already running.",
	noticeShiftNotRunning: "You have no running shift to end.",
	noticeFailed:          "Something went wrong, please try again.",
}

// noticeText returns the message for a notice key, or "" for unknown keys.
func noticeText(key string) string {
	return notices[key]
}

func noticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, checkin.ErrNoLocationSelected):
		return noticePickLocation
	case errors.Is(err, checkin.ErrShiftAlreadyRunning):
		return noticeShiftRunning
	case errors.Is(err, checkin.ErrShiftNotRunning):
		return noticeShiftNotRunning
	case errors.Is(err, checkin.ErrNothingPending):
		return noticeNothingPending
	case errors.Is(err, catalog.ErrLocationNotFound):
		return noticeLocationMissing
	default:
		return noticeFailed
	}
}

func (cc *CheckInController) backHome(c *fiber.Ctx, action string, err error) error {
	if err != nil {
		log.Printf("⚠️ [%s] %s: %v", action, cc.currentUser(c).Username, err)
	}
	key := noticeFor(err)
	if key == "" {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Redirect("/?notice="+url.QueryEscape(key), fiber.StatusSeeOther)
}

func (cc *CheckInController) PageSelect(c *fiber.Ctx) error {
	_, err := cc.selectLocation(c, c.Params("id"))
	return cc.backHome(c, "SelectLocation", err)
}

func (cc *CheckInController) PageConfirm(c *fiber.Ctx) error {
	return cc.backHome(c, "ConfirmLocation", cc.machine(c).ConfirmLocation())
}

func (cc *CheckInController) PageCancel(c *fiber.Ctx) error {
	cc.machine(c).CancelLocation()
	return cc.backHome(c, "CancelLocation", nil)
}

func (cc *CheckInController) PageStart(c *fiber.Ctx) error {
	return cc.backHome(c, "StartShift", cc.startShift(c))
}

func (cc *CheckInController) PageEnd(c *fiber.Ctx) error {
	return cc.backHome(c, "EndShift", cc.endShift(c))
}
