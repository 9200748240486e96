package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/careerbridge/careerbridge/internal/client/client"
	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/repositories/sessioncache"
	"github.com/careerbridge/careerbridge/internal/client/services"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeAuth scripts the auth gateway for prompt tests.
type fakeAuth struct {
	loginOK     bool
	user        *models.SessionUser
	registerMsg string
	registerErr error
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) bool { return f.loginOK }
func (f *fakeAuth) Logout(ctx context.Context)                             {}
func (f *fakeAuth) RefreshSession(ctx context.Context) *models.SessionUser { return f.user }
func (f *fakeAuth) Register(ctx context.Context, req client.RegisterRequest) (string, error) {
	return f.registerMsg, f.registerErr
}
func (f *fakeAuth) ResendVerification(ctx context.Context, email string) (string, error) {
	return "If the address is registered, a verification email has been sent.", nil
}
func (f *fakeAuth) VerifyEmail(ctx context.Context, token string) (bool, string, error) {
	return true, "", nil
}
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

// fakeProfiles serves a fixed profile.
type fakeProfiles struct {
	profile *models.Profile
	err     error
	updated *models.Profile
}

func (f *fakeProfiles) Get(ctx context.Context) (*models.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfiles) Update(ctx context.Context, p *models.Profile) error {
	f.updated = p
	return nil
}

// fakeJobs serves a fixed feed.
type fakeJobs struct {
	jobs    []models.Job
	postErr error
}

func (f *fakeJobs) List(ctx context.Context) ([]models.Job, error) { return f.jobs, nil }
func (f *fakeJobs) Post(ctx context.Context, job models.Job) (*models.Job, error) {
	if f.postErr != nil {
		return nil, f.postErr
	}
	job.ID = "j1"
	return &job, nil
}

func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()
	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	i := 0
	getSimpleText = func(r *bufio.Reader, title string, w io.Writer) (string, error) {
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(w io.Writer) (string, error) { return password, nil }
}

func newTestApp(auth services.AuthService) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	store := session.NewStore(sessioncache.NewMemoryRepository(), logging.NewNop())
	guard := services.NewRouteGuard(auth, store, logging.NewNop())
	return &App{
		store:    store,
		auth:     auth,
		profiles: &fakeProfiles{profile: &models.Profile{}},
		jobs:     &fakeJobs{},
		guard:    guard,
		log:      logging.NewNop(),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      out,
	}, out
}

func TestLogin_RejectedShowsGenericMessage(t *testing.T) {
	stubInput(t, []string{"jane@example.com"}, "wrongpass")
	app, out := newTestApp(&fakeAuth{loginOK: false})

	require.NoError(t, app.Login(context.Background()))
	require.Contains(t, out.String(), "Invalid email or password")
	require.NotContains(t, out.String(), "credentials")
}

func TestLogin_InvalidEmailNeverReachesGateway(t *testing.T) {
	stubInput(t, []string{"not-an-email"}, "secret123")
	app, out := newTestApp(&fakeAuth{loginOK: true})

	require.NoError(t, app.Login(context.Background()))
	require.Contains(t, out.String(), "Please enter a valid email")
	require.NotContains(t, out.String(), "Login successful")
}

func TestLogin_SuccessNavigatesToRoleProfile(t *testing.T) {
	stubInput(t, []string{"jane@example.com"}, "secret123")
	app, out := newTestApp(&fakeAuth{
		loginOK: true,
		user:    &models.SessionUser{UserID: "u1", FullName: "Jane Doe", Role: models.RoleStudent, IsVerified: true},
	})

	require.NoError(t, app.Login(context.Background()))
	require.Contains(t, out.String(), "Login successful")
	require.Contains(t, out.String(), "-> /student-profile")
}

func TestRegister_ValidationMessages(t *testing.T) {
	stubInput(t, []string{"Jane Doe", "jd", "jane@example.com", "pilot"}, "123")
	app, out := newTestApp(&fakeAuth{})

	require.NoError(t, app.Register(context.Background()))
	require.Contains(t, out.String(), "Username must be at least 3 characters")
	require.Contains(t, out.String(), "Password must be at least 6 characters")
	require.Contains(t, out.String(), "Please select a role (student or recruiter)")
}

func TestRegister_ShowsBackendMessage(t *testing.T) {
	stubInput(t, []string{"Jane Doe", "janed", "jane@example.com", "student"}, "secret123")
	app, out := newTestApp(&fakeAuth{registerMsg: "Registered successfully! Please check your email for verification."})

	require.NoError(t, app.Register(context.Background()))
	require.Contains(t, out.String(), "Registered successfully!")
}

func TestWhoAmI(t *testing.T) {
	app, out := newTestApp(&fakeAuth{user: &models.SessionUser{
		FullName: "Jane Doe", Email: "jane@example.com", Role: models.RoleStudent, IsVerified: true,
	}})
	app.WhoAmI(context.Background())
	require.Contains(t, out.String(), "Jane Doe <jane@example.com>")

	app, out = newTestApp(&fakeAuth{})
	app.WhoAmI(context.Background())
	require.Contains(t, out.String(), "Not logged in")
}

func TestNavigate_AnonymousGoesToLogin(t *testing.T) {
	app, out := newTestApp(&fakeAuth{})

	app.Navigate(context.Background())
	require.Contains(t, out.String(), "-> /login")
	require.Contains(t, out.String(), "Please log in")
}
