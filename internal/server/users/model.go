package users

import "time"

type User struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	PasswordHash string
	CreatedAt    time.Time
}
