package leave

import "time"

// DayPolicy decides how many leave days a date range consumes. The counting
// rule is a business decision that differs between deployments, so it is
// configuration rather than a hardcoded rule.
type DayPolicy string

const (
	// DayPolicyCalendar counts every day in the range, endpoints included:
	// Mon 15th .. Fri 19th is 5 days.
	DayPolicyCalendar DayPolicy = "calendar"
	// DayPolicyBusiness counts only weekdays in the range, endpoints included.
	DayPolicyBusiness DayPolicy = "business"
)

// ParseDayPolicy returns the policy for a config string, defaulting to
// calendar counting for empty or unknown values.
func ParseDayPolicy(s string) DayPolicy {
	if DayPolicy(s) == DayPolicyBusiness {
		return DayPolicyBusiness
	}
	return DayPolicyCalendar
}

// CountDays computes the days consumed by [start, end] under the policy.
// Callers must ensure start <= end; the result is always >= 0 and, for a
// valid range under calendar policy, >= 1.
func (p DayPolicy) CountDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	if p == DayPolicyBusiness {
		days := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
				days++
			}
		}
		return days
	}

	return int(end.Sub(start).Hours()/24) + 1
}
