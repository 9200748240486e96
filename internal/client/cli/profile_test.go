package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestShowProfile_Student(t *testing.T) {
	app, out := newTestApp(&fakeAuth{})
	app.profiles = &fakeProfiles{profile: &models.Profile{
		SessionUser: models.SessionUser{
			FullName: "Jane Doe", Username: "janed",
			Email: "jane@example.com", Role: models.RoleStudent, IsVerified: true,
		},
		Bio:    "CS student",
		Skills: []string{"go", "sql"},
	}}

	app.ShowProfile(context.Background())
	require.Contains(t, out.String(), "Jane Doe (@janed) — student")
	require.Contains(t, out.String(), "Bio: CS student")
	require.Contains(t, out.String(), "Skills: go, sql")
}

func TestShowProfile_Recruiter(t *testing.T) {
	app, out := newTestApp(&fakeAuth{})
	app.profiles = &fakeProfiles{profile: &models.Profile{
		SessionUser: models.SessionUser{FullName: "Rick R", Username: "rickr", Role: models.RoleRecruiter},
		Recruiter:   &models.RecruiterInfo{CompanyName: "TechFlow", Designation: "Hiring Lead"},
	}}

	app.ShowProfile(context.Background())
	require.Contains(t, out.String(), "Company: TechFlow — Hiring Lead")
}

func TestEditBio_WholeObjectReplace(t *testing.T) {
	app, out := newTestApp(&fakeAuth{})
	fp := &fakeProfiles{profile: &models.Profile{
		SessionUser: models.SessionUser{FullName: "Jane Doe", Role: models.RoleStudent},
		Bio:         "old bio",
		Skills:      []string{"go"},
	}}
	app.profiles = fp
	app.reader = bufio.NewReader(strings.NewReader("new bio\n\n"))

	require.NoError(t, app.EditBio(context.Background()))
	require.Contains(t, out.String(), "Profile updated")
	require.NotNil(t, fp.updated)
	require.Equal(t, "new bio", fp.updated.Bio)
	require.Equal(t, []string{"go"}, fp.updated.Skills, "untouched fields ride along in the replacement")
}
