package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// bindAndValidate parses the body into req and runs its validate tags.
func bindAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("Invalid request format")
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
			}
		}
		if len(fields) == 0 {
			return fmt.Errorf("Invalid input: %v", err)
		}
		return fmt.Errorf("Invalid input: %s", strings.Join(fields, ", "))
	}
	return nil
}
