package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Username       string   `db:"username"`
	Email          string   `db:"email"`
	PasswordHash   string   `db:"password"`
	ProfilePicture string   `db:"profile_picture"`
	Role           UserRole `db:"role"`
}
