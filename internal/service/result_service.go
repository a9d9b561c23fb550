package service

import (
	"context"

	"testseries-service/internal/models"
)

type ResultService struct {
	Results ResultStore
	Cache   *LeaderboardCache
}

func NewResultService(results ResultStore, cache *LeaderboardCache) *ResultService {
	return &ResultService{Results: results, Cache: cache}
}

func (s *ResultService) GetResult(ctx context.Context, id string) (*models.Result, error) {
	result, err := s.Results.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrResultNotFound)
	}
	return result, nil
}

func (s *ResultService) GetResultByAttempt(ctx context.Context, attemptID string) (*models.Result, error) {
	result, err := s.Results.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, notFound(err, ErrResultNotFound)
	}
	return result, nil
}

func (s *ResultService) GetResultsByUser(ctx context.Context, userID string) ([]models.Result, error) {
	return s.Results.FindByUser(ctx, userID)
}

// Leaderboard returns a test's results in rank order, read through the
// cache. limit <= 0 means the full set.
func (s *ResultService) Leaderboard(ctx context.Context, testID string, limit int) ([]models.Result, error) {
	results, ok := s.Cache.Get(ctx, testID)
	if !ok {
		var err error
		results, err = s.Results.FindByTestRanked(ctx, testID)
		if err != nil {
			return nil, err
		}
		s.Cache.Set(ctx, testID, results)
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
