package alert

import (
	"time"

	"github.com/alertwatch/alertwatch/internal/domain"
)

// PlanUpdate computes the field mutations to persist for cur given the
// validated request fields. It performs no I/O; committing the returned
// update is the store's job.
//
// The one state transition lives here: an explicit active true→false flip
// stamps TriggeredAt with now. An unsupplied active, inactive→active, or
// inactive→inactive leaves TriggeredAt alone — the field records "has ever
// been triggered", so re-arming an alert does not clear it.
func PlanUpdate(cur *domain.Alert, f Fields, now time.Time) domain.Update {
	upd := domain.Update{
		Email:     f.Email,
		Threshold: f.Threshold,
		Active:    f.Active,
	}
	if f.Active != nil && cur.Active && !*f.Active {
		ts := now.UTC()
		upd.TriggeredAt = &ts
	}
	return upd
}
