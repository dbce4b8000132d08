package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
}

// force timestamps to be in IST because the college publishes
// notice dates in local time and the store's scraped_at should
// agree with them no matter where the process runs
func Now() time.Time {
	return time.Now().In(Location)
}
