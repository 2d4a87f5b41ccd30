// Package views renders the server-side HTML pages.
package views

import (
	"Backend-PlanujSmeny/src/models"
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = map[string]*template.Template{
	"login":     parse("templates/login.html"),
	"dashboard": parse("templates/dashboard.html"),
	"admin":     parse("templates/admin.html"),
}

func parse(page string) *template.Template {
	return template.Must(template.New("base.html").ParseFS(templatesFS, "templates/base.html", "templates/header.html", page))
}

// LoginPage ข้อมูลของหน้า login
type LoginPage struct {
	Error    string
	From     string
	Username string
}

// DashboardPage ข้อมูลของหน้า dashboard
type DashboardPage struct {
	models.DashboardView
	Notice string
}

// AdminPage ข้อมูลของหน้า admin
type AdminPage struct {
	User     models.User
	Initials string
}

// Render executes the named page into the response.
func Render(c *fiber.Ctx, page string, data interface{}) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
