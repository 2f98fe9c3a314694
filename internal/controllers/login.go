package controllers

import (
	"context"

	"github.com/MahirAsef999/E-Buy/internal/api"
	"github.com/MahirAsef999/E-Buy/internal/session"
	"github.com/MahirAsef999/E-Buy/internal/validate"
	"go.uber.org/zap"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) error
}

type SessionWriter interface {
	Token() (string, bool)
	Save(token string, user session.User) error
}

type LoginController struct {
	auth    AuthAPI
	session SessionWriter
	log     *zap.Logger
}

func NewLoginController(auth AuthAPI, sess SessionWriter, log *zap.Logger) *LoginController {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoginController{auth: auth, session: sess, log: log}
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	FieldErrors validate.FieldErrors
	Message     Message
	Redirect    string
}

// AlreadySignedIn mirrors the sign-in page's load check: a present token
// sends the user straight to the main page.
func (lc *LoginController) AlreadySignedIn() bool {
	_, ok := lc.session.Token()
	return ok
}

func (lc *LoginController) Login(ctx context.Context, req LoginRequest) LoginResult {
	form := validate.LoginForm{Email: req.Email, Password: req.Password}
	if fe := form.Validate(); !fe.Ok() {
		return LoginResult{FieldErrors: fe}
	}

	resp, err := lc.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return LoginResult{Message: failureMessage(err, "Login failed. Please check your credentials.")}
	}

	if err := lc.session.Save(resp.Token, resp.User); err != nil {
		lc.log.Error("persisting session failed", zap.Error(err))
		return LoginResult{Message: errorMsg("Signed in, but the session could not be saved.")}
	}

	lc.log.Info("signed in", zap.String("email", resp.User.Email))
	return LoginResult{
		Message:  successMsg("Login successful! Redirecting..."),
		Redirect: PageMain,
	}
}
