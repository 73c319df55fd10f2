package model

import "turnero/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Role      string  `db:"role"`
	Active    bool    `db:"active"`
	LastLogin *string `db:"last_login"`
	model.Metadata
}
