package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Mexico_City")
	if err != nil {
		panic(err)
	}
}

// force timezone to be in Mexico City because Progol publishes draw dates
// in local time while our servers may end up anywhere, which causes
// disturbances when manipulating dates based on
// <time.Time>.Year()/Month()/Day()/Hour()/...
func Now() time.Time {
	return time.Now().In(Location)
}

// NextSunday returns the first Sunday strictly after `now`.
// Progol draws typically happen on Sundays.
func NextSunday(now time.Time) time.Time {
	days := (7 - int(now.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, Location).
		AddDate(0, 0, days)
}
