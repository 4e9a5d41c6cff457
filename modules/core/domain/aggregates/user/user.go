package user

import "time"

// Role is the fixed enumeration seeded by the reference-data loader.
type Role int

const (
	RoleAdmin   Role = 1
	RoleManager Role = 2
	RoleStaff   Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleManager:
		return "Manager"
	case RoleStaff:
		return "Staff"
	default:
		return "Unknown"
	}
}

// RoleFromName maps a lowercase role name to its enum value.
func RoleFromName(name string) (Role, bool) {
	switch name {
	case "admin":
		return RoleAdmin, true
	case "manager":
		return RoleManager, true
	case "staff":
		return RoleStaff, true
	default:
		return 0, false
	}
}

type Option func(*User)

func WithMustChangePassword() Option {
	return func(u *User) { u.mustChangePassword = true }
}

type User struct {
	id                 int64
	email              string
	passwordHash       string
	role               Role
	isActive           bool
	emailVerified      bool
	mustChangePassword bool
	createdAt          time.Time
}

func New(email, passwordHash string, role Role, opts ...Option) User {
	u := User{
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func Hydrate(
	id int64,
	email, passwordHash string,
	role Role,
	isActive, emailVerified, mustChangePassword bool,
	createdAt time.Time,
) User {
	return User{
		id:                 id,
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		isActive:           isActive,
		emailVerified:      emailVerified,
		mustChangePassword: mustChangePassword,
		createdAt:          createdAt,
	}
}

func (u User) ID() int64                { return u.id }
func (u User) Email() string            { return u.email }
func (u User) PasswordHash() string     { return u.passwordHash }
func (u User) Role() Role               { return u.role }
func (u User) IsActive() bool           { return u.isActive }
func (u User) EmailVerified() bool      { return u.emailVerified }
func (u User) MustChangePassword() bool { return u.mustChangePassword }
func (u User) CreatedAt() time.Time     { return u.createdAt }
