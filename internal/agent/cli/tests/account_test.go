package tests

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/bytebite/internal/agent/api"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/cli"
	"github.com/IvanChernomyrdin/bytebite/internal/agent/config"
	serr "github.com/IvanChernomyrdin/bytebite/internal/shared/errors"
)

func TestNewLoginCmd_Success_SavesIdentity(t *testing.T) {
	_, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	out, err := run(t, cli.NewLoginCmd(app), "abc123\n", "--user-id", "chef", "--stdin")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "logged in as Chef") {
		t.Fatalf("unexpected output: %q", out)
	}

	loaded, err := config.Load(app.CredsPath)
	require.NoError(t, err)
	require.Equal(t, &config.Credentials{UserID: "chef", Username: "Chef", Email: "chef@example.com"}, loaded)
}

func TestNewLoginCmd_WrongPassword(t *testing.T) {
	_, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	_, err := run(t, cli.NewLoginCmd(app), "nope\n", "--user-id", "chef", "--stdin")
	require.ErrorIs(t, err, serr.ErrRejected)
	require.Contains(t, err.Error(), "Invalid credentials")

	loaded, err := config.Load(app.CredsPath)
	require.NoError(t, err)
	require.Empty(t, loaded.UserID)
}

func TestNewLoginCmd_EmptyPassword(t *testing.T) {
	_, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	_, err := run(t, cli.NewLoginCmd(app), "\n", "--user-id", "chef", "--stdin")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty password")
}

func TestNewLoginCmd_ServerDown(t *testing.T) {
	_, srv := newAuthority(t)
	url := srv.URL
	srv.Close()

	app := newApp(t, url, false)
	_, err := run(t, cli.NewLoginCmd(app), "abc123\n", "--user-id", "chef", "--stdin")
	require.ErrorIs(t, err, serr.ErrUnreachable)
	require.Contains(t, err.Error(), "service unreachable")
}

func TestNewLoginCmd_SaveHookError(t *testing.T) {
	_, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	orig := cli.SaveCredentials
	t.Cleanup(func() { cli.SaveCredentials = orig })
	cli.SaveCredentials = func(string, *config.Credentials) error { return errors.New("disk full") }

	_, err := run(t, cli.NewLoginCmd(app), "abc123\n", "--user-id", "chef", "--stdin")
	require.EqualError(t, err, "disk full")
}

func TestNewLogoutCmd_RemovesCredentials(t *testing.T) {
	app := newApp(t, "http://localhost:1", true)
	require.NoError(t, config.Save(app.CredsPath, app.Creds))

	out, err := run(t, cli.NewLogoutCmd(app), "")
	require.NoError(t, err)
	require.Contains(t, out, "logged out")

	loaded, err := config.Load(app.CredsPath)
	require.NoError(t, err)
	require.Empty(t, loaded.UserID)
	require.Empty(t, app.Creds.UserID)
}

func TestNewSignupCmd_Success(t *testing.T) {
	a, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	out, err := run(t, cli.NewSignupCmd(app), "StrongPass123\nStrongPass123\n",
		"--user-id", "cook", "--username", "Cook", "--email", "cook@example.com", "--stdin")
	require.NoError(t, err)
	require.Contains(t, out, "User registered successfully")
	require.Equal(t, []string{
		"GET /check-id/cook",
		"GET /check-email/cook@example.com",
		"POST /signup",
	}, a.Calls())
}

func TestNewSignupCmd_TakenID(t *testing.T) {
	a, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	_, err := run(t, cli.NewSignupCmd(app), "StrongPass123\nStrongPass123\n",
		"--user-id", "chef", "--username", "Chef", "--email", "chef@example.com", "--stdin")
	require.ErrorIs(t, err, serr.ErrRejected)
	require.EqualError(t, err, "ID already exists")
	require.Equal(t, []string{"GET /check-id/chef"}, a.Calls())
}

func TestNewSignupCmd_LocalValidation(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		want  string
	}{
		{"mismatch", "StrongPass123\nStrongPass124\n", "mismatch"},
		{"too short", "abc\nabc\n", "too short"},
		{"empty repeat", "StrongPass123\n\n", "password repeat is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, srv := newAuthority(t)
			app := newApp(t, srv.URL, false)

			_, err := run(t, cli.NewSignupCmd(app), tt.stdin,
				"--user-id", "cook", "--username", "Cook", "--email", "cook@example.com", "--stdin")
			require.ErrorIs(t, err, serr.ErrInvalidInput)
			require.Contains(t, err.Error(), tt.want)
			require.Empty(t, a.Calls())
		})
	}
}

func TestNewFindIDCmd(t *testing.T) {
	_, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	out, err := run(t, cli.NewFindIDCmd(app), "", "--email", "chef@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "your id: chef")

	_, err = run(t, cli.NewFindIDCmd(app), "", "--email", "nobody@example.com")
	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Email not found", apiErr.Message)
}

func TestNewResetPasswordCmd(t *testing.T) {
	_, srv := newAuthority(t)
	app := newApp(t, srv.URL, false)

	out, err := run(t, cli.NewResetPasswordCmd(app), "", "--email", "chef@example.com", "--user-id", "chef")
	require.NoError(t, err)
	require.Contains(t, out, "Temporary password sent")
}
