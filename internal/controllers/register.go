package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/validate"
	"go.uber.org/zap"
)

type RegisterController struct {
	auth AuthAPI
	log  *zap.Logger
}

func NewRegisterController(auth AuthAPI, log *zap.Logger) *RegisterController {
	if log == nil {
		log = zap.NewNop()
	}
	return &RegisterController{auth: auth, log: log}
}

type RegisterRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Address         string
}

type RegisterResult struct {
	FieldErrors validate.FieldErrors
	Message     Message
	Redirect    string
}

func (rc *RegisterController) Register(ctx context.Context, req RegisterRequest) RegisterResult {
	form := validate.RegistrationForm{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Address:         req.Address,
	}
	if fe := form.Validate(); !fe.Ok() {
		return RegisterResult{FieldErrors: fe}
	}

	var address *string
	if a := strings.TrimSpace(req.Address); a != "" {
		address = &a
	}

	err := rc.auth.Register(ctx, api.RegisterRequest{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		Address:   address,
	})
	if err != nil {
		if api.IsStatus(err, http.StatusConflict) {
			return RegisterResult{
				FieldErrors: validate.FieldErrors{"email": "This email is already registered"},
				Message:     errorMsg("Please use a different email or sign in instead."),
			}
		}
		return RegisterResult{Message: failureMessage(err, "Registration failed. Please try again.")}
	}

	rc.log.Info("account created", zap.String("email", req.Email))
	return RegisterResult{
		Message:  successMsg("Account created successfully! Redirecting to login..."),
		Redirect: PageSignIn,
	}
}
