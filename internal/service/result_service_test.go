package service

import (
	"context"
	"errors"
	"testing"
)

func TestGetResultByAttemptUnknown(t *testing.T) {
	svc := NewResultService(newFakeResultStore(), nil)

	_, err := svc.GetResultByAttempt(context.Background(), "missing")
	if !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("GetResultByAttempt error = %v, want ErrResultNotFound", err)
	}
}

func TestLeaderboardRankOrderAndLimit(t *testing.T) {
	_, store := seededRankingFixture()
	// Nil cache always misses, so every read goes through the store.
	svc := NewResultService(store, nil)

	full, err := svc.Leaderboard(context.Background(), "t1", 0)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(full) != 3 {
		t.Fatalf("leaderboard has %d entries, want 3", len(full))
	}
	// Score descending, ties broken by less time spent.
	wantOrder := []string{"r2", "r1", "r3"}
	for i, want := range wantOrder {
		if full[i].ID != want {
			t.Errorf("position %d = %s, want %s", i+1, full[i].ID, want)
		}
	}

	top, err := svc.Leaderboard(context.Background(), "t1", 2)
	if err != nil {
		t.Fatalf("Leaderboard with limit: %v", err)
	}
	if len(top) != 2 || top[0].ID != "r2" || top[1].ID != "r1" {
		t.Errorf("top 2 = %+v, want r2 then r1", top)
	}

	// A limit past the set size returns everything.
	all, err := svc.Leaderboard(context.Background(), "t1", 10)
	if err != nil {
		t.Fatalf("Leaderboard with oversized limit: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("oversized limit returned %d entries, want 3", len(all))
	}
}
