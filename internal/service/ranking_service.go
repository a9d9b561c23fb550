package service

import (
	"context"
	"sync"

	"testseries-service/internal/event"
	"testseries-service/internal/scoring"
)

// RankingService assigns rank/percentile/totalAttempts over a test's result
// set. Both entry points serialize per test: two concurrent submissions for
// the same test cannot interleave their read-compute-write cycles, so a
// freshly written rank never reflects a stale view of the result set.
type RankingService struct {
	Results   ResultStore
	Cache     *LeaderboardCache
	Publisher *event.EventPublisher

	mu        sync.Mutex
	testLocks map[string]*sync.Mutex
}

func NewRankingService(results ResultStore, cache *LeaderboardCache, publisher *event.EventPublisher) *RankingService {
	return &RankingService{
		Results:   results,
		Cache:     cache,
		Publisher: publisher,
		testLocks: make(map[string]*sync.Mutex),
	}
}

func (s *RankingService) lockForTest(testID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.testLocks[testID]
	if !ok {
		lock = &sync.Mutex{}
		s.testLocks[testID] = lock
	}
	return lock
}

// RankSingle recomputes the placement of one result against all results of
// its test and writes back only that result's rank fields.
func (s *RankingService) RankSingle(ctx context.Context, resultID string) error {
	result, err := s.Results.FindByID(ctx, resultID)
	if err != nil {
		return notFound(err, ErrResultNotFound)
	}

	lock := s.lockForTest(result.TestID)
	lock.Lock()
	defer lock.Unlock()

	all, err := s.Results.FindByTestRanked(ctx, result.TestID)
	if err != nil {
		return err
	}
	for _, placement := range scoring.Rank(all) {
		if placement.ResultID != resultID {
			continue
		}
		if err := s.Results.SaveRank(ctx, resultID, placement.Rank, placement.Percentile, placement.TotalAttempts); err != nil {
			return err
		}
		s.Cache.Invalidate(ctx, result.TestID)
		s.Publisher.Publish("result.ranked", map[string]interface{}{
			"result_id": resultID,
			"test_id":   result.TestID,
			"rank":      placement.Rank,
		})
		return nil
	}
	// The result vanished between the two reads.
	return ErrResultNotFound
}

// RankAll reassigns ranks for every result of a test in one pass. Used after
// regrades or late submissions; a write failure aborts the batch and the
// caller re-runs to repair.
func (s *RankingService) RankAll(ctx context.Context, testID string) error {
	lock := s.lockForTest(testID)
	lock.Lock()
	defer lock.Unlock()

	all, err := s.Results.FindByTestRanked(ctx, testID)
	if err != nil {
		return err
	}
	for _, placement := range scoring.Rank(all) {
		if err := s.Results.SaveRank(ctx, placement.ResultID, placement.Rank, placement.Percentile, placement.TotalAttempts); err != nil {
			return err
		}
	}
	s.Cache.Invalidate(ctx, testID)
	s.Publisher.Publish("test.ranks_recomputed", map[string]interface{}{
		"test_id":        testID,
		"total_attempts": len(all),
	})
	return nil
}
