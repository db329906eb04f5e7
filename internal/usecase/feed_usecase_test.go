package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foreign/internal/domain/entity"
)

func feedFixture() (*FeedUseCase, *entity.User, *fakePostRepo, *fakeLocationRepo) {
	viewer := &entity.User{
		ID:         "viewer",
		Name:       "Valeria",
		University: "CETYS",
		Friends:    []string{"friend1", "friend2"},
	}
	userRepo := newFakeUserRepo(
		viewer,
		&entity.User{ID: "friend1", Name: "Fernanda", University: "UNAM"},
		&entity.User{ID: "friend2", Name: "Fabian"},
		&entity.User{ID: "stranger", Name: "Santiago", University: "CETYS"},
	)

	postRepo := newFakePostRepo(
		&entity.Post{ID: "p1", UserID: "viewer", Caption: "my own post"},
		&entity.Post{ID: "p2", UserID: "friend1", Caption: "tacos near campus"},
		&entity.Post{ID: "p3", UserID: "stranger", Caption: "library hours"},
		&entity.Post{ID: "p4", UserID: "friend2", Caption: "intramural game"},
	)
	locationRepo := &fakeLocationRepo{}

	uc := NewFeedUseCase(postRepo, locationRepo, NewAuthorResolver(userRepo))
	return uc, viewer, postRepo, locationRepo
}

func TestListPostsPublicKeepsEverything(t *testing.T) {
	uc, viewer, _, _ := feedFixture()

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilityPublic,
	})
	require.NoError(t, err)
	require.Len(t, posts, 4)

	// Fetch order survives filtering and author attachment.
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)
	assert.Equal(t, "p3", posts[2].ID)
	assert.Equal(t, "p4", posts[3].ID)

	for _, p := range posts {
		require.NotNil(t, p.Author)
	}
	assert.Equal(t, "Fernanda", posts[1].Author.Name)
}

func TestListPostsSameUniversityRequiresBothSides(t *testing.T) {
	uc, viewer, _, _ := feedFixture()

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilitySameUniversity,
	})
	require.NoError(t, err)

	// Viewer is CETYS: their own post and the stranger's CETYS post match.
	// friend1 is UNAM, friend2 has no university set; both are excluded.
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p3", posts[1].ID)
}

func TestListPostsSameUniversityExcludesWhenViewerUnset(t *testing.T) {
	uc, viewer, _, _ := feedFixture()
	viewer.University = ""

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilitySameUniversity,
	})
	require.NoError(t, err)

	// Empty never equals empty: even friend2's university-less post is out.
	assert.Empty(t, posts)
}

func TestListPostsFriendsOnly(t *testing.T) {
	uc, viewer, _, _ := feedFixture()

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilityFriendsOnly,
	})
	require.NoError(t, err)

	// Without IncludeSelf the viewer's own post is filtered out. friend2's
	// post stays regardless of university.
	require.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[0].ID)
	assert.Equal(t, "p4", posts[1].ID)
}

func TestListPostsFriendsOnlyIncludeSelf(t *testing.T) {
	uc, viewer, _, _ := feedFixture()

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:     "createdAt",
		Visibility:  VisibilityFriendsOnly,
		IncludeSelf: true,
	})
	require.NoError(t, err)

	require.Len(t, posts, 3)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "p2", posts[1].ID)
	assert.Equal(t, "p4", posts[2].ID)
}

func TestListPostsPlaceholderAuthorKeepsItem(t *testing.T) {
	viewer := &entity.User{ID: "viewer", Name: "Valeria"}
	userRepo := newFakeUserRepo(viewer)
	postRepo := newFakePostRepo(
		&entity.Post{ID: "p1", UserID: "deleted-user", Caption: "orphaned"},
	)
	uc := NewFeedUseCase(postRepo, &fakeLocationRepo{}, NewAuthorResolver(userRepo))

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilityPublic,
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)

	require.NotNil(t, posts[0].Author)
	assert.Equal(t, entity.UnknownUserName, posts[0].Author.Name)
	assert.Equal(t, entity.DefaultAvatarURL, posts[0].Author.Photo)
	assert.Equal(t, "deleted-user", posts[0].Author.ID)
}

func TestListPostsSearchMatchesCaptionAndAuthorName(t *testing.T) {
	uc, viewer, _, _ := feedFixture()

	posts, err := uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilityPublic,
		Search:     "TACOS",
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p2", posts[0].ID)

	posts, err = uc.ListPosts(context.Background(), viewer, FeedQuery{
		OrderBy:    "createdAt",
		Visibility: VisibilityPublic,
		Search:     "santiago",
	})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "p3", posts[0].ID)
}

func TestListLocationsViewerAndFriendsOnly(t *testing.T) {
	uc, viewer, _, locationRepo := feedFixture()

	ctx := context.Background()
	require.NoError(t, locationRepo.Create(ctx, &entity.Location{ID: "l1", Title: "Cafeteria", CreatedBy: "viewer"}))
	require.NoError(t, locationRepo.Create(ctx, &entity.Location{ID: "l2", Title: "Gym", CreatedBy: "friend1"}))
	require.NoError(t, locationRepo.Create(ctx, &entity.Location{ID: "l3", Title: "Parking", CreatedBy: "stranger"}))

	locations, err := uc.ListLocations(ctx, viewer, FeedQuery{OrderBy: "createdAt"})
	require.NoError(t, err)

	require.Len(t, locations, 2)
	assert.Equal(t, "l1", locations[0].ID)
	assert.Equal(t, "l2", locations[1].ID)
	require.NotNil(t, locations[1].Author)
	assert.Equal(t, "Fernanda", locations[1].Author.Name)
}

func TestListLocationsSearch(t *testing.T) {
	uc, viewer, _, locationRepo := feedFixture()

	ctx := context.Background()
	require.NoError(t, locationRepo.Create(ctx, &entity.Location{ID: "l1", Title: "Cafeteria", Description: "cheap breakfast", CreatedBy: "viewer"}))
	require.NoError(t, locationRepo.Create(ctx, &entity.Location{ID: "l2", Title: "Gym", CreatedBy: "friend1"}))

	locations, err := uc.ListLocations(ctx, viewer, FeedQuery{OrderBy: "createdAt", Search: "breakfast"})
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "l1", locations[0].ID)
}
