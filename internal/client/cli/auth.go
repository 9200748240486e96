package cli

import (
	"context"
	"fmt"

	"github.com/careerbridge/careerbridge/internal/client/client"
	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/services"
	"github.com/careerbridge/careerbridge/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates them locally, and attempts to
// authenticate. A rejected login prints one generic message regardless of
// the reason; the backend's explanation is never shown, so the prompt
// reveals nothing about which accounts exist.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	form := validation.LoginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		for _, msg := range validation.Explain(err) {
			fmt.Fprintln(a.out, msg)
		}
		return nil
	}

	if !a.auth.Login(ctx, email, password) {
		fmt.Fprintln(a.out, "Invalid email or password")
		return nil
	}

	fmt.Fprintln(a.out, "Login successful")
	a.Navigate(ctx)
	return nil
}

// Register prompts for the registration fields, validates them, and creates
// the account. Backend messages (already-taken username, etc.) are shown
// verbatim for this flow.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (student/recruiter)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	form := validation.RegisterForm{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := form.Validate(); err != nil {
		for _, msg := range validation.Explain(err) {
			fmt.Fprintln(a.out, msg)
		}
		return nil
	}

	msg, err := a.auth.Register(ctx, client.RegisterRequest{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: password,
		Role:     models.Role(role),
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return nil
	}
	if msg == "" {
		msg = "Registered successfully! Please check your email for verification."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Logout always succeeds from the user's perspective.
func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
}

// WhoAmI re-confirms the session with the backend and prints the result.
func (a *App) WhoAmI(ctx context.Context) {
	u := a.auth.RefreshSession(ctx)
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> — %s (verified: %v)\n", u.FullName, u.Email, u.Role, u.IsVerified)
}

// Navigate runs one route-guard decision cycle and renders the outcome.
func (a *App) Navigate(ctx context.Context) {
	route := a.guard.Decide(ctx)
	fmt.Fprintf(a.out, "-> %s\n", route)

	switch route {
	case services.RouteStudentProfile, services.RouteRecruiterProfile:
		a.ShowProfile(ctx)
	case services.RouteVerifyEmail:
		fmt.Fprintln(a.out, "Please verify your email address (use: verify <token>)")
	case services.RouteLogin:
		fmt.Fprintln(a.out, "Please log in")
	}
}
