package cli

import (
	"context"
	"fmt"
)

// Verify redeems an emailed verification token.
func (a *App) Verify(ctx context.Context, token string) {
	verified, msg, err := a.auth.VerifyEmail(ctx, token)
	if err != nil {
		fmt.Fprintln(a.out, "Network error. Please try again later.")
		return
	}
	if verified {
		fmt.Fprintln(a.out, "Verification successful! Your account has been verified.")
		return
	}
	if msg == "" {
		msg = "Verification failed. Invalid or expired token."
	}
	fmt.Fprintln(a.out, msg)
}

// Resend asks the backend for another verification email. The address is
// taken from the argument, or prompted for.
func (a *App) Resend(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			return err
		}
	}

	msg, err := a.auth.ResendVerification(ctx, email)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to resend verification email: %v\n", err)
		return nil
	}
	if msg == "" {
		msg = "Verification email resent! Please check your inbox."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
