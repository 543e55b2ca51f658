package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkazantsev/jobdeck/internal/client/api"
	"github.com/mkazantsev/jobdeck/internal/client/models"
)

// stubInputs replaces the interactive helpers so commands can run headless.
// Text prompts are answered from the answers queue in order; every password
// prompt returns pw.
func stubInputs(t *testing.T, answers []string, pw []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt %d", i)
		}
		answer := answers[i]
		i++
		return answer, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
}

func TestLogin_Success(t *testing.T) {
	client := &fakeClient{
		loginResp: &api.AuthResponse{
			Access: "tok",
			User:   &models.User{ID: 1, Username: "sam", UserType: models.UserTypeJobSeeker},
		},
	}
	a, out := newTestApp(t, client, true)
	stubInputs(t, []string{"sam"}, []byte("secret"))

	require.NoError(t, a.Login(context.Background()))

	st := a.session.Snapshot()
	require.True(t, st.IsAuthenticated())
	require.Equal(t, "tok", client.token)
	require.Contains(t, out.String(), "Login successful")
}

func TestLogin_ServerDetailIsShown(t *testing.T) {
	client := &fakeClient{loginErr: &api.Error{Status: 401, Detail: "Invalid credentials"}}
	a, out := newTestApp(t, client, true)
	stubInputs(t, []string{"sam"}, []byte("wrong"))

	require.NoError(t, a.Login(context.Background()))

	require.False(t, a.session.Snapshot().IsAuthenticated())
	require.Contains(t, out.String(), "Login unsuccessful: Invalid credentials")
}

func TestRegister_Success(t *testing.T) {
	client := &fakeClient{
		registerResp: &api.AuthResponse{
			Access: "tok",
			User:   &models.User{ID: 2, Username: "acme", UserType: models.UserTypeEmployer},
		},
	}
	a, out := newTestApp(t, client, true)
	stubInputs(t, []string{"acme", "acme@example.org", "employer"}, []byte("longenough"))

	require.NoError(t, a.Register(context.Background()))

	st := a.session.Snapshot()
	require.True(t, st.IsEmployer())
	require.Contains(t, out.String(), "Success!")
}

func TestRegister_ValidationFailureStaysAnonymous(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, true)
	stubInputs(t, []string{"acme", "not-an-email", "employer"}, []byte("longenough"))

	require.NoError(t, a.Register(context.Background()))

	require.False(t, a.session.Snapshot().IsAuthenticated())
	require.Contains(t, out.String(), "Registration unsuccessful")
}

func TestLogout_ClearsSession(t *testing.T) {
	client := &fakeClient{}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 1, Username: "sam", UserType: models.UserTypeJobSeeker})

	a.Logout(context.Background())

	require.False(t, a.session.Snapshot().IsAuthenticated())
	require.Equal(t, "", client.token)
	require.Contains(t, out.String(), "Logged out")
}

func TestUpdateProfile_FailureKeepsUser(t *testing.T) {
	client := &fakeClient{updateErr: &api.Error{Status: 400, Detail: "bad payload"}}
	a, out := newTestApp(t, client, true)
	loginAs(t, a, client, &models.User{ID: 1, Username: "sam", UserType: models.UserTypeJobSeeker})
	stubInputs(t, []string{"", "", "", "", "", "", ""}, nil)

	a.updateProfile(context.Background())

	st := a.session.Snapshot()
	require.Equal(t, "sam", st.User.Username)
	require.Contains(t, out.String(), "Update unsuccessful: bad payload")
}
