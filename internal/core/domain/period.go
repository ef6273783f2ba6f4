package domain

import "time"

// Period is an accounting period as exposed by the ERP. The gateway only reads periods.
type Period struct {
	PeriodID  int64     `json:"periodID"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

// Covers reports whether t falls inside the period, inclusive on both ends at day granularity.
// Calendar days are compared in the location of StartDate.
func (p Period) Covers(t time.Time) bool {
	loc := p.StartDate.Location()
	day := civilDay(t.In(loc))
	return day >= civilDay(p.StartDate) && day <= civilDay(p.EndDate.In(loc))
}

func civilDay(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
