package reminder

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ruleSpec is the slice of a ReminderRule the planner needs.
type ruleSpec struct {
	ID        uuid.UUID
	OffsetMin int
	Channel   string
}

// planned is one reminder the planner decided to create.
type planned struct {
	RuleID       uuid.UUID
	Channel      string
	ScheduledFor time.Time
}

// plan computes which reminders to create for an appointment starting at
// start. Rules are walked farthest-out first (offset descending, channel
// ascending for equal offsets). A rule is skipped when a reminder for it
// already exists (idempotent re-generation) or when its send time is already
// in the past at planning time.
func plan(start, now time.Time, rules []ruleSpec, existing map[uuid.UUID]bool) []planned {
	ordered := make([]ruleSpec, len(rules))
	copy(ordered, rules)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].OffsetMin != ordered[j].OffsetMin {
			return ordered[i].OffsetMin > ordered[j].OffsetMin
		}
		return ordered[i].Channel < ordered[j].Channel
	})

	var out []planned
	for _, r := range ordered {
		if existing[r.ID] {
			continue
		}
		at := start.Add(-time.Duration(r.OffsetMin) * time.Minute)
		if !at.After(now) {
			continue
		}
		out = append(out, planned{RuleID: r.ID, Channel: r.Channel, ScheduledFor: at})
	}
	return out
}
