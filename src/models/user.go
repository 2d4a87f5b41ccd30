package models

import "strings"

// UserRole บทบาทของผู้ใช้ที่ login เข้ามา
type UserRole string

const (
	UserRoleAdmin      UserRole = "Admin"
	UserRoleSupervisor UserRole = "Supervisor"
)

// User ผู้ใช้ที่ login แล้ว
type User struct {
	Username string   `json:"username" example:"admin"`
	Role     UserRole `json:"role" example:"Admin" enums:"Admin,Supervisor"`
}

// Initials builds up to two upper-case initials from a full name ("Ahmed Taha" -> "AT").
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		b.WriteString(string([]rune(part)[:1]))
	}
	r := []rune(b.String())
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
