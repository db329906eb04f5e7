package usecase

import (
	"context"
	"sync"

	"foreign/internal/domain/entity"
	"foreign/internal/domain/repository"
	"foreign/pkg/logger"
)

type AdminUseCase struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	locationRepo repository.LocationRepository
	forumRepo    repository.ForumRepository
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	locationRepo repository.LocationRepository,
	forumRepo repository.ForumRepository,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:     userRepo,
		postRepo:     postRepo,
		locationRepo: locationRepo,
		forumRepo:    forumRepo,
	}
}

// DashboardStats fetches each collection count concurrently. A failing count
// is logged and left out of the result so one slow or broken collection
// never empties the whole dashboard.
func (uc *AdminUseCase) DashboardStats(ctx context.Context) map[string]int64 {
	type counter struct {
		name  string
		count func(context.Context) (int64, error)
	}

	counters := []counter{
		{"users", uc.userRepo.Count},
		{"posts", uc.postRepo.Count},
		{"locations", uc.locationRepo.Count},
		{"forum_questions", uc.forumRepo.CountQuestions},
	}

	stats := make(map[string]int64)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, c := range counters {
		wg.Add(1)
		go func(c counter) {
			defer wg.Done()
			count, err := c.count(ctx)
			if err != nil {
				logger.Warn("Dashboard count for %s failed: %v", c.name, err)
				return
			}
			mu.Lock()
			stats[c.name] = count
			mu.Unlock()
		}(c)
	}

	wg.Wait()
	return stats
}

func (uc *AdminUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List(ctx, "createdAt", true)
}
