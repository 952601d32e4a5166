package domain

import "time"

// Alert is a threshold-triggered notification record. Active false means
// the alert has been triggered (or disabled); TriggeredAt is set once, at
// the first active→inactive transition, and is never cleared afterwards.
type Alert struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Threshold   float64    `json:"threshold"`
	Active      bool       `json:"active"`
	TriggeredAt *time.Time `json:"triggered_at"` // pointer to allow null
	CreatedAt   time.Time  `json:"created_at"`
}

// Update is the set of field mutations to persist for an alert.
// A nil pointer means "leave the field untouched".
type Update struct {
	Email       *string
	Threshold   *float64
	Active      *bool
	TriggeredAt *time.Time
}

// IsZero reports whether the update changes nothing.
func (u Update) IsZero() bool {
	return u.Email == nil && u.Threshold == nil && u.Active == nil && u.TriggeredAt == nil
}

// Apply copies the supplied fields onto a.
func (u Update) Apply(a *Alert) {
	if u.Email != nil {
		a.Email = *u.Email
	}
	if u.Threshold != nil {
		a.Threshold = *u.Threshold
	}
	if u.Active != nil {
		a.Active = *u.Active
	}
	if u.TriggeredAt != nil {
		a.TriggeredAt = u.TriggeredAt
	}
}
