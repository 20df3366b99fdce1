package echoapi

import (
	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/user"
)

type (
	OTPRequest struct {
		Username string `json:"username" validate:"required,min=4"`
	}

	// OTPResponse carries the code back to the caller. Delivery is simulated,
	// so the client is responsible for showing it to the user.
	OTPResponse struct {
		Detail string `json:"detail"`
		OTP    string `json:"otp"`
	}

	SignupRequest struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
		OTP             string `json:"otp" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// LoginResponse is returned on login, on onboarding (the claims change)
	// and, when auto-login is on, right after signup.
	LoginResponse struct {
		Token string    `json:"token"`
		User  user.User `json:"user"`
	}

	SignupResponse struct {
		Token string    `json:"token,omitempty"`
		User  user.User `json:"user"`
	}

	TabRequest struct {
		Tab string `json:"tab" validate:"required"`
	}

	ClassRequest struct {
		Class string `json:"class" validate:"required,classlabel"`
	}

	SubjectRequest struct {
		SubjectID int `json:"subject_id" validate:"required"`
	}
)

func (r *OTPRequest) Validate() error {
	r.Username = core.CleanString(r.Username, true /* lower */)
	return core.Validate.Struct(r)
}

func (r *SignupRequest) Validate() error {
	// the embedded NewUser fields are validated by the user service
	return core.Validate.Struct(r)
}

func (r *SignupRequest) NewUser() user.NewUser {
	return user.NewUser{
		Username:        r.Username,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

func (r *LoginRequest) Validate() error {
	r.Username = core.CleanString(r.Username, true /* lower */)
	return core.Validate.Struct(r)
}

func (r *TabRequest) Validate() error {
	r.Tab = core.CleanString(r.Tab)
	return core.Validate.Struct(r)
}

func (r *ClassRequest) Validate() error {
	r.Class = core.CleanString(r.Class)
	return core.Validate.Struct(r)
}

func (r *SubjectRequest) Validate() error {
	return core.Validate.Struct(r)
}
