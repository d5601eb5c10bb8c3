package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/auth"
)

func TestRegister(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Register("Ann", "Ann@X.com", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.NotZero(t, result.User.ID)
	require.Equal(t, "Ann", result.User.Name)
	require.Equal(t, "ann@x.com", result.User.Email, "email should be lowercased")

	tokens := auth.NewTokenManager("test-secret", auth.DefaultTTL)
	userID, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, result.User.ID, userID)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct{ name, email, password string }{
		{"", "ann@x.com", "pw123"},
		{"Ann", "", "pw123"},
		{"Ann", "ann@x.com", ""},
		{"   ", "ann@x.com", "pw123"},
	}

	for _, c := range cases {
		_, err := svc.Register(c.name, c.email, c.password)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	// Same email again, regardless of the other fields or letter case.
	_, err = svc.Register("Other", "ANN@x.com", "different")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	require.EqualError(t, err, "Email already registered")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	registered, err := svc.Register("Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	result, err := svc.Login("ann@x.com", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, registered.User.ID, result.User.ID)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login("", "pw123")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Login("ann@x.com", "")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLoginDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("Ann", "ann@x.com", "pw123")
	require.NoError(t, err)

	_, unknownEmail := svc.Login("nobody@x.com", "pw123")
	_, wrongPassword := svc.Login("ann@x.com", "wrong")

	require.Equal(t, apperr.KindAuthentication, apperr.KindOf(unknownEmail))
	require.Equal(t, apperr.KindAuthentication, apperr.KindOf(wrongPassword))
	require.Equal(t, unknownEmail.Error(), wrongPassword.Error())
}
