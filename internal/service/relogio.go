package service

import "time"

// DataFormat is the day-granularity date layout used across the ledger.
const DataFormat = "2006-01-02"

// Relogio resolves "hoje" in the store's timezone. Injected so tests can
// pin the calendar day.
type Relogio interface {
	Hoje() string
}

type relogioLocal struct{ loc *time.Location }

// NewRelogio builds a Relogio for the given IANA timezone name. An invalid
// or empty name falls back to UTC.
func NewRelogio(timezone string) Relogio {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &relogioLocal{loc: loc}
}

func (r *relogioLocal) Hoje() string {
	return time.Now().In(r.loc).Format(DataFormat)
}
