package user

import (
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/dineshpandey3618-web/Rank1/core"
)

// Roles
const (
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
)

// Boards
const (
	BoardCBSE  = "CBSE"
	BoardICSE  = "ICSE"
	BoardState = "State Board"
)

// StateNA is the sentinel stored when the selected board is not a state board.
const StateNA = "N/A"

var (
	AllRoles  = []string{RoleStudent, RoleTeacher}
	AllBoards = []string{BoardCBSE, BoardICSE, BoardState}
)

// User is an account holder. Role, Board and State are null until onboarding
// completes; they transition together.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	IsAdmin      bool        `json:"is_admin"`
	Role         null.String `json:"role"`
	Board        null.String `json:"board"`
	State        null.String `json:"state"`
	PasswordHash []byte      `json:"-"`
	CreatedAt    time.Time   `json:"created_at"` // UTC
	UpdatedAt    time.Time   `json:"updated_at"` // UTC
	LastLogin    time.Time   `json:"last_login"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// OnboardingComplete reports whether the one-time profile setup has been done.
func (u User) OnboardingComplete() bool {
	return u.Role.Valid && u.Board.Valid && u.State.Valid
}

func (u User) IsStudent() bool {
	return u.Role.Valid && u.Role.String == RoleStudent
}

func (u User) IsTeacher() bool {
	return u.Role.Valid && u.Role.String == RoleTeacher
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username        string `json:"username" validate:"required,min=4"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.Username = core.CleanString(nu.Username, true /* lower */)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(nu.Username)
}

// Onboarding defines the one-time role/board/state profile setup.
type Onboarding struct {
	Role  string `json:"role" validate:"required,oneof=Student Teacher"`
	Board string `json:"board" validate:"required,oneof=CBSE ICSE 'State Board'"`
	State string `json:"state" validate:"required_if=Board 'State Board'"`
}

func (ob *Onboarding) Validate() error {
	ob.Role = core.CleanString(ob.Role)
	ob.Board = core.CleanString(ob.Board)
	ob.State = core.CleanString(ob.State)

	if err := core.Validate.Struct(ob); err != nil {
		return err
	}

	// State only applies to state boards.
	if ob.Board != BoardState {
		ob.State = StateNA
	}
	return nil
}
