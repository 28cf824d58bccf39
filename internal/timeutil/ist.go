// Package timeutil pins operator-facing times to Indian Standard Time.
// Records are stored as timestamptz and travel as RFC3339; receipts,
// registers and day boundaries render in IST regardless of where the
// server runs.
package timeutil

import "time"

// Layouts used on receipts and exported registers.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)

// IST is UTC+5:30, the zone the counter operates in.
var IST *time.Location

func init() {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Containers without tzdata still need the offset
		loc = time.FixedZone("IST", (5*60+30)*60)
	}
	IST = loc
}

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// ToIST converts t to IST.
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// ParseInIST parses value in the IST zone.
func ParseInIST(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, IST)
}

// FormatIST renders t in IST with the given layout.
func FormatIST(t time.Time, layout string) string {
	return t.In(IST).Format(layout)
}

// StartOfDay returns midnight IST of t's calendar day. The dashboard's
// "today" counters and revenue windows are bounded by these, so a record
// checked in late evening still counts against that calendar day.
func StartOfDay(t time.Time) time.Time {
	d := t.In(IST)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, IST)
}

// EndOfDay returns the last instant of t's calendar day in IST.
func EndOfDay(t time.Time) time.Time {
	d := t.In(IST)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), IST)
}
