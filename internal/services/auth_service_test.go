package services

import (
	"testing"

	"github.com/atakanyildirim/taskdeck/internal/models"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid input", email: "alice@example.com", password: "secret1"},
		{name: "mixed-case email accepted", email: "Alice@Example.COM", password: "secret1"},
		{name: "missing domain", email: "alice@", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "missing tld", email: "alice@example", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "whitespace in email", email: "a lice@example.com", password: "secret1", wantErr: ErrInvalidEmail},
		{name: "password too short", email: "alice@example.com", password: "close", wantErr: ErrWeakPassword},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			db := testDB(t)
			svc := NewAuthService(db)

			user, err := svc.Register(test.email, test.password)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)

				var count int64
				db.Model(&models.User{}).Count(&count)
				require.Zero(t, count, "no user should be created on failure")
				return
			}

			require.NoError(t, err)
			require.Equal(t, "alice@example.com", user.Email, "stored email is lowercased")
			require.True(t, user.HasPassword())
			require.Equal(t, "password", user.AuthProvider)
		})
	}
}

func TestRegister_DuplicateEmailAnyCase(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register("ALICE@example.com", "other-password")
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count, "exactly one user exists afterward")
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	created, err := svc.Register("alice@example.com", "secret1")
	require.NoError(t, err)

	t.Run("original-case email and correct password", func(t *testing.T) {
		user, err := svc.Login("Alice@Example.COM", "secret1")
		require.NoError(t, err)
		require.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("alice@example.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown account is indistinguishable", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "secret1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin_OAuthOnlyAccountHasNoPasswordCredential(t *testing.T) {
	db := testDB(t)
	svc := NewAuthService(db)

	_, err := svc.SignInGoogle(GoogleProfile{
		ID: "google-123", Email: "bob@example.com", Name: "Bob",
	})
	require.NoError(t, err)

	_, err = svc.Login("bob@example.com", "anything")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInGoogle(t *testing.T) {
	t.Run("creates oauth-only account for new email", func(t *testing.T) {
		db := testDB(t)
		svc := NewAuthService(db)

		user, err := svc.SignInGoogle(GoogleProfile{
			ID: "google-123", Email: "Bob@Example.com", Name: "Bob", Picture: "https://example.com/bob.png",
		})
		require.NoError(t, err)
		require.Equal(t, "bob@example.com", user.Email)
		require.False(t, user.HasPassword())
		require.NotNil(t, user.GoogleID)
		require.Equal(t, "google-123", *user.GoogleID)
		require.Equal(t, "google", user.AuthProvider)
	})

	t.Run("links existing password account and backfills profile", func(t *testing.T) {
		db := testDB(t)
		svc := NewAuthService(db)

		created, err := svc.Register("alice@example.com", "secret1")
		require.NoError(t, err)

		user, err := svc.SignInGoogle(GoogleProfile{
			ID: "google-456", Email: "alice@example.com", Name: "Alice", Picture: "https://example.com/a.png",
		})
		require.NoError(t, err)
		require.Equal(t, created.ID, user.ID)

		var stored models.User
		require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
		require.NotNil(t, stored.GoogleID)
		require.Equal(t, "google-456", *stored.GoogleID)
		require.Equal(t, "Alice", stored.Name)
		require.True(t, stored.HasPassword(), "password credential survives linking")
	})

	t.Run("repeat sign-in with same identity succeeds", func(t *testing.T) {
		db := testDB(t)
		svc := NewAuthService(db)

		first, err := svc.SignInGoogle(GoogleProfile{ID: "google-123", Email: "bob@example.com"})
		require.NoError(t, err)

		again, err := svc.SignInGoogle(GoogleProfile{ID: "google-123", Email: "bob@example.com"})
		require.NoError(t, err)
		require.Equal(t, first.ID, again.ID)

		var count int64
		db.Model(&models.User{}).Count(&count)
		require.EqualValues(t, 1, count)
	})

	t.Run("different google identity on a linked account is a conflict", func(t *testing.T) {
		db := testDB(t)
		svc := NewAuthService(db)

		_, err := svc.SignInGoogle(GoogleProfile{ID: "google-123", Email: "bob@example.com"})
		require.NoError(t, err)

		_, err = svc.SignInGoogle(GoogleProfile{ID: "google-999", Email: "bob@example.com"})
		require.ErrorIs(t, err, ErrGoogleIDConflict)
	})
}
