package reminder

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPlanOrdering(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := start.Add(-48 * time.Hour)

	ruleEmail60 := ruleSpec{ID: uuid.New(), OffsetMin: 60, Channel: "EMAIL"}
	ruleSms60 := ruleSpec{ID: uuid.New(), OffsetMin: 60, Channel: "SMS"}
	ruleSms1440 := ruleSpec{ID: uuid.New(), OffsetMin: 1440, Channel: "SMS"}

	got := plan(start, now, []ruleSpec{ruleEmail60, ruleSms60, ruleSms1440}, nil)
	if len(got) != 3 {
		t.Fatalf("plan() returned %d reminders, want 3", len(got))
	}

	// Farthest-out first, then channel ascending for equal offsets.
	if got[0].RuleID != ruleSms1440.ID {
		t.Errorf("first planned rule = %s, want the 1440-minute rule", got[0].RuleID)
	}
	if got[1].RuleID != ruleEmail60.ID || got[2].RuleID != ruleSms60.ID {
		t.Errorf("equal offsets not ordered by channel: got %s then %s", got[1].Channel, got[2].Channel)
	}

	want := start.Add(-24 * time.Hour)
	if !got[0].ScheduledFor.Equal(want) {
		t.Errorf("ScheduledFor = %v, want %v", got[0].ScheduledFor, want)
	}
}

func TestPlanIdempotence(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := start.Add(-48 * time.Hour)

	rules := []ruleSpec{
		{ID: uuid.New(), OffsetMin: 1440, Channel: "SMS"},
		{ID: uuid.New(), OffsetMin: 60, Channel: "EMAIL"},
	}

	first := plan(start, now, rules, nil)
	if len(first) != 2 {
		t.Fatalf("first plan() = %d reminders, want 2", len(first))
	}

	existing := map[uuid.UUID]bool{}
	for _, p := range first {
		existing[p.RuleID] = true
	}

	second := plan(start, now, rules, existing)
	if len(second) != 0 {
		t.Errorf("second plan() = %d reminders, want 0", len(second))
	}
}

func TestPlanSkipsPastDue(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	// 30 minutes before start: the 60-minute rule's send time has passed.
	now := start.Add(-30 * time.Minute)

	rules := []ruleSpec{
		{ID: uuid.New(), OffsetMin: 60, Channel: "SMS"},
		{ID: uuid.New(), OffsetMin: 15, Channel: "SMS"},
	}

	got := plan(start, now, rules, nil)
	if len(got) != 1 {
		t.Fatalf("plan() = %d reminders, want 1", len(got))
	}
	if got[0].ScheduledFor != start.Add(-15*time.Minute) {
		t.Errorf("kept the wrong rule: ScheduledFor = %v", got[0].ScheduledFor)
	}
}

func TestPlanExactlyDueIsSkipped(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	now := start.Add(-60 * time.Minute)

	rules := []ruleSpec{{ID: uuid.New(), OffsetMin: 60, Channel: "SMS"}}

	if got := plan(start, now, rules, nil); len(got) != 0 {
		t.Errorf("plan() = %d reminders, want 0 for a send time equal to now", len(got))
	}
}
