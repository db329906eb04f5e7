package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foreign/internal/domain/entity"
	apperrors "foreign/pkg/errors"
)

type fakeAuthClient struct {
	emails  map[string]string
	names   map[string]string
	deleted []string
}

func (c *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func (c *fakeAuthClient) GetUserEmail(ctx context.Context, uid string) (string, string, error) {
	email, ok := c.emails[uid]
	if !ok {
		return "", "", apperrors.NotFound("Auth user", nil)
	}
	return email, c.names[uid], nil
}

func (c *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	c.deleted = append(c.deleted, uid)
	return nil
}

func TestEnsureProfileCreatesOnFirstSignIn(t *testing.T) {
	userRepo := newFakeUserRepo()
	authClient := &fakeAuthClient{
		emails: map[string]string{"uid1": "sara@cetys.mx"},
		names:  map[string]string{"uid1": "Sara"},
	}
	uc := NewProfileUseCase(userRepo, authClient)
	ctx := context.Background()

	user, err := uc.EnsureProfile(ctx, "uid1")
	require.NoError(t, err)
	assert.Equal(t, "sara@cetys.mx", user.Email)
	assert.Equal(t, "Sara", user.Name)
	assert.True(t, user.NotificationsEnabled)
	assert.NotNil(t, user.Friends)

	// Second call returns the stored profile, no second create.
	user.University = "CETYS"
	require.NoError(t, userRepo.Update(ctx, user))

	again, err := uc.EnsureProfile(ctx, "uid1")
	require.NoError(t, err)
	assert.Equal(t, "CETYS", again.University)
}

func TestUpdateProfileSkipsEmptyFields(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{
		ID: "uid1", Name: "Sara", University: "CETYS", Origin: "Colombia",
	})
	uc := NewProfileUseCase(userRepo, &fakeAuthClient{})
	ctx := context.Background()

	mentor := true
	updated, err := uc.UpdateProfile(ctx, "uid1", UpdateProfileInput{
		Name:     "Sara M.",
		IsMentor: &mentor,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sara M.", updated.Name)
	assert.Equal(t, "CETYS", updated.University)
	assert.Equal(t, "Colombia", updated.Origin)
	assert.True(t, updated.IsMentor)
}

func TestDeleteAccountRemovesAuthAndProfile(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid1", Name: "Sara"})
	authClient := &fakeAuthClient{}
	uc := NewProfileUseCase(userRepo, authClient)
	ctx := context.Background()

	require.NoError(t, uc.DeleteAccount(ctx, "uid1"))
	assert.Equal(t, []string{"uid1"}, authClient.deleted)

	_, err := uc.GetProfile(ctx, "uid1")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestListMentorsSameUniversityOnly(t *testing.T) {
	viewer := &entity.User{ID: "viewer", Name: "Sara", University: "CETYS"}
	userRepo := newFakeUserRepo(
		viewer,
		&entity.User{ID: "m1", Name: "Marco", University: "CETYS", IsMentor: true},
		&entity.User{ID: "m2", Name: "Nora", University: "UNAM", IsMentor: true},
		&entity.User{ID: "m3", Name: "Pablo", IsMentor: true},
		&entity.User{ID: "u1", Name: "Quinn", University: "CETYS"},
	)
	uc := NewProfileUseCase(userRepo, &fakeAuthClient{})

	mentors, err := uc.ListMentors(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, mentors, 1)
	assert.Equal(t, "m1", mentors[0].ID)
}

func TestListMentorsEmptyWhenViewerHasNoUniversity(t *testing.T) {
	viewer := &entity.User{ID: "viewer", Name: "Sara"}
	userRepo := newFakeUserRepo(
		viewer,
		&entity.User{ID: "m3", Name: "Pablo", IsMentor: true},
	)
	uc := NewProfileUseCase(userRepo, &fakeAuthClient{})

	mentors, err := uc.ListMentors(context.Background(), viewer)
	require.NoError(t, err)
	assert.Empty(t, mentors)
}

func TestProfileSessionLoadRefreshClear(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid1", Name: "Sara"})
	session := NewProfileSession(userRepo)
	ctx := context.Background()

	assert.Nil(t, session.Current("uid1"))

	loaded, err := session.Load(ctx, "uid1")
	require.NoError(t, err)
	assert.Equal(t, "Sara", loaded.Name)
	assert.Equal(t, "uid1", session.Current("uid1").ID)

	// Refresh re-reads the store; a rename elsewhere becomes visible.
	user, _ := userRepo.GetByID(ctx, "uid1")
	user.Name = "Sara M."
	require.NoError(t, userRepo.Update(ctx, user))

	refreshed, err := session.Refresh(ctx, "uid1")
	require.NoError(t, err)
	assert.Equal(t, "Sara M.", refreshed.Name)
	assert.Equal(t, "Sara M.", session.Current("uid1").Name)

	session.Clear("uid1")
	assert.Nil(t, session.Current("uid1"))

	// Refresh with nothing loaded is a no-op.
	refreshed, err = session.Refresh(ctx, "uid1")
	require.NoError(t, err)
	assert.Nil(t, refreshed)
}

func TestProfileSessionIsolatesUsers(t *testing.T) {
	userRepo := newFakeUserRepo(
		&entity.User{ID: "alice", Name: "Alice", Email: "alice@cetys.mx"},
		&entity.User{ID: "bob", Name: "Bob", Email: "bob@unam.mx"},
	)
	session := NewProfileSession(userRepo)
	ctx := context.Background()

	_, err := session.Load(ctx, "alice")
	require.NoError(t, err)

	// Bob has never loaded: refreshing or reading on his behalf must not
	// hand back Alice's pinned profile.
	refreshed, err := session.Refresh(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, refreshed)
	assert.Nil(t, session.Current("bob"))

	_, err = session.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "alice@cetys.mx", session.Current("alice").Email)
	assert.Equal(t, "bob@unam.mx", session.Current("bob").Email)

	// Bob signing out leaves Alice's cell alone.
	session.Clear("bob")
	assert.Nil(t, session.Current("bob"))
	assert.Equal(t, "Alice", session.Current("alice").Name)
}

func TestAuthorResolverPlaceholders(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid1", Name: "Sara", Photo: "sara.png"})
	resolver := NewAuthorResolver(userRepo)
	ctx := context.Background()

	author := resolver.Resolve(ctx, "uid1")
	assert.Equal(t, "Sara", author.Name)
	assert.Equal(t, "sara.png", author.Photo)

	author = resolver.Resolve(ctx, "gone")
	assert.Equal(t, "gone", author.ID)
	assert.Equal(t, entity.UnknownUserName, author.Name)
	assert.Equal(t, entity.DefaultAvatarURL, author.Photo)

	snapshot := resolver.Snapshot(ctx, "gone")
	assert.Equal(t, entity.UnknownUserName, snapshot.Name)
	assert.Equal(t, entity.DefaultAvatarURL, snapshot.Image)
}
