package usecase

import (
	"context"
	"strings"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/errors"
)

// Visibility selects which content items a viewer's query returns.
type Visibility string

const (
	// VisibilityPublic applies no filtering.
	VisibilityPublic Visibility = "public"
	// VisibilitySameUniversity keeps items whose author's university equals
	// the viewer's. Both sides must be non-empty: an item with no university
	// set is excluded even when the viewer has none either.
	VisibilitySameUniversity Visibility = "university"
	// VisibilityFriendsOnly keeps items authored by the viewer's friends. The
	// viewer's own items are included only when the query sets IncludeSelf;
	// the two screen variants differ on this and both are preserved.
	VisibilityFriendsOnly Visibility = "friends"
)

// FeedQuery shapes one aggregation run: fetch order, visibility policy and
// optional free-text search.
type FeedQuery struct {
	OrderBy     string
	Descending  bool
	Visibility  Visibility
	IncludeSelf bool
	Search      string
}

// FeedUseCase is the content aggregation pipeline: fetch the whole
// collection in order, attach author projections, filter by visibility, then
// by search. Filtering never reorders; per-item author failures degrade to
// the placeholder instead of dropping the item.
type FeedUseCase struct {
	postRepo     repository.PostRepository
	locationRepo repository.LocationRepository
	resolver     *AuthorResolver
}

func NewFeedUseCase(
	postRepo repository.PostRepository,
	locationRepo repository.LocationRepository,
	resolver *AuthorResolver,
) *FeedUseCase {
	return &FeedUseCase{
		postRepo:     postRepo,
		locationRepo: locationRepo,
		resolver:     resolver,
	}
}

func (uc *FeedUseCase) ListPosts(ctx context.Context, viewer *entity.User, query FeedQuery) ([]*entity.Post, error) {
	if query.OrderBy == "" {
		query.OrderBy = "createdAt"
		query.Descending = true
	}

	posts, err := uc.postRepo.List(ctx, query.OrderBy, query.Descending)
	if err != nil {
		return nil, errors.Internal("Could not load posts", err)
	}

	for _, post := range posts {
		author := uc.resolver.Resolve(ctx, post.UserID)
		post.Author = &author
	}

	visible := make([]*entity.Post, 0, len(posts))
	for _, post := range posts {
		if !uc.postVisible(post, viewer, query) {
			continue
		}
		if !postMatchesSearch(post, query.Search) {
			continue
		}
		visible = append(visible, post)
	}

	return visible, nil
}

func (uc *FeedUseCase) postVisible(post *entity.Post, viewer *entity.User, query FeedQuery) bool {
	switch query.Visibility {
	case VisibilitySameUniversity:
		return sameUniversity(post.Author, viewer)
	case VisibilityFriendsOnly:
		if query.IncludeSelf && post.UserID == viewer.ID {
			return true
		}
		return viewer.IsFriendOf(post.UserID)
	default:
		return true
	}
}

// ListLocations returns map locations created by the viewer or the viewer's
// friends, in fetch order.
func (uc *FeedUseCase) ListLocations(ctx context.Context, viewer *entity.User, query FeedQuery) ([]*entity.Location, error) {
	if query.OrderBy == "" {
		query.OrderBy = "createdAt"
		query.Descending = true
	}

	locations, err := uc.locationRepo.List(ctx, query.OrderBy, query.Descending)
	if err != nil {
		return nil, errors.Internal("Could not load locations", err)
	}

	visible := make([]*entity.Location, 0, len(locations))
	for _, location := range locations {
		if location.CreatedBy != viewer.ID && !viewer.IsFriendOf(location.CreatedBy) {
			continue
		}
		if !locationMatchesSearch(location, query.Search) {
			continue
		}

		author := uc.resolver.Resolve(ctx, location.CreatedBy)
		location.Author = &author
		visible = append(visible, location)
	}

	return visible, nil
}

func sameUniversity(author *entity.Author, viewer *entity.User) bool {
	if author == nil {
		return false
	}
	return author.University != "" && viewer.University != "" &&
		author.University == viewer.University
}

func postMatchesSearch(post *entity.Post, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(post.Caption), needle) {
		return true
	}
	if post.Author != nil && strings.Contains(strings.ToLower(post.Author.Name), needle) {
		return true
	}
	return false
}

func locationMatchesSearch(location *entity.Location, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(location.Title), needle) ||
		strings.Contains(strings.ToLower(location.Description), needle)
}
