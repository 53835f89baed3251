package models

import "time"

// Role names as stored in the User table.
const (
	RoleAdmin        = "ADMIN"
	RoleGerente      = "GERENTE"
	RoleProfesional  = "PROFESIONAL"
	RoleMesaEntrada  = "MESA_ENTRADA"
)

// User represents a row of the User table.
type User struct {
	ID        int64     `json:"id" db:"id_user"`
	Nombre    string    `json:"nombre" db:"nombre"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
