package entity

import "time"

// DisplayDate renders a stored YYYY-MM-DD (or RFC3339) date as MM/DD/YYYY,
// passing through anything it cannot parse. Every surface that shows a
// date to a person goes through this one formatter.
func DisplayDate(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("01/02/2006")
		}
	}
	return s
}
