package events

import "time"

// Info is the metadata for the single event this service registers
// tickets for. It is sourced from configuration at startup.
type Info struct {
	Theme string
	Date  string
	Time  string
	Venue string
}

// FormattedDate renders the configured date as a long human-readable
// date for the ticket, e.g. "Friday, November 21, 2025". If the
// configured value is not an ISO date it is returned as-is.
func (i Info) FormattedDate() string {
	parsed, err := time.Parse("2006-01-02", i.Date)
	if err != nil {
		return i.Date
	}

	return parsed.Format("Monday, January 2, 2006")
}
