package interviews

import (
	"context"
	"testing"
)

func TestCanTransitionIsMonotonic(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusDone, true},
		{StatusCompleted, StatusEvaluating, true},
		{StatusEvaluating, StatusDone, true},
		{StatusCompleted, StatusInProgress, false},
		{StatusDone, StatusEvaluating, false},
		{StatusDone, StatusDone, false},
		{"bogus", StatusDone, false},
		{StatusInProgress, "bogus", false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%q, %q): expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestMemoryRepoSetStatusNeverMovesBackwards(t *testing.T) {
	repo := NewMemoryRepo()
	id, err := repo.Create(context.Background(), Interview{CandidateID: 1, Skill: "sql"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetStatus(context.Background(), id, StatusDone); err != nil {
		t.Fatalf("set done: %v", err)
	}
	if err := repo.SetStatus(context.Background(), id, StatusCompleted); err != nil {
		t.Fatalf("set completed: %v", err)
	}

	iv, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if iv.Status != StatusDone {
		t.Fatalf("expected status to stay done, got %q", iv.Status)
	}
}
