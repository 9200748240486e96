package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) status() string {
	u := a.store.Current()
	if u == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", u.Username, u.Role)
}

// Root runs the command loop.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to CareerBridge (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "cb %s> ", a.status())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, go, profile, editbio, jobs, postjob, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, verify <token>, resend <email>, jobs, exit")
			}
		case "register":
			if err := a.Register(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "go":
			a.Navigate(ctx)
		case "verify":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: verify <token>")
				continue
			}
			a.Verify(ctx, args[0])
		case "resend":
			if err := a.Resend(ctx, args); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "profile":
			a.ShowProfile(ctx)
		case "editbio":
			if err := a.EditBio(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "jobs":
			a.ListJobs(ctx)
		case "postjob":
			if err := a.PostJob(ctx); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
			}
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
