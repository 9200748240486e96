package cli

import (
	"context"
	"fmt"
	"strings"
)

// ShowProfile renders the full profile of the logged-in user.
func (a *App) ShowProfile(ctx context.Context) {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile. Are you logged in?")
		return
	}

	fmt.Fprintf(a.out, "%s (@%s) — %s\n", p.FullName, p.Username, p.Role)
	fmt.Fprintf(a.out, "Email: %s (verified: %v)\n", p.Email, p.IsVerified)
	if p.Location != "" {
		fmt.Fprintf(a.out, "Location: %s\n", p.Location)
	}
	if p.Bio != "" {
		fmt.Fprintf(a.out, "Bio: %s\n", p.Bio)
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	for _, e := range p.Education {
		fmt.Fprintf(a.out, "Education: %s, %s %s (%s–%s)\n", e.Institution, e.Degree, e.Field, e.StartYear, e.EndYear)
	}
	for _, e := range p.Experience {
		fmt.Fprintf(a.out, "Experience: %s at %s (%s–%s)\n", e.Title, e.Company, e.StartDate, e.EndDate)
	}
	if p.Recruiter != nil {
		fmt.Fprintf(a.out, "Company: %s — %s\n", p.Recruiter.CompanyName, p.Recruiter.Designation)
	}
}

// EditBio fetches the profile, replaces the bio, and saves the whole object
// back. Profile mutations are whole-object replacements, never merges.
func (a *App) EditBio(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile. Are you logged in?")
		return nil
	}

	bio, err := GetMultiline(a.reader, "Enter bio", a.out)
	if err != nil {
		return err
	}
	p.Bio = bio

	if err := a.profiles.Update(ctx, p); err != nil {
		fmt.Fprintf(a.out, "Failed to update profile: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated")
	return nil
}
