package controllers

import (
	"Backend-PlanujSmeny/src/models"
	"Backend-PlanujSmeny/src/utils"
	"Backend-PlanujSmeny/src/views"

	"github.com/gofiber/fiber/v2"
)

// DashboardPage แสดงหน้าหลักของ shift tracker
func (cc *CheckInController) DashboardPage(c *fiber.Ctx) error {
	view, err := cc.dashboard(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return views.Render(c, "dashboard", views.DashboardPage{DashboardView: view, Notice: noticeText(c.Query("notice"))})
}

// AdminPage หน้าสำหรับ Admin เท่านั้น
func (cc *CheckInController) AdminPage(c *fiber.Ctx) error {
	user := cc.currentUser(c)
	return views.Render(c, "admin", views.AdminPage{User: user, Initials: models.Initials(user.Username)})
}
