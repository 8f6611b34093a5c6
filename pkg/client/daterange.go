package client

import "time"

// DateBucket is a named date range choice in the transactions filter.
type DateBucket string

const (
	BucketAll       DateBucket = "all"
	BucketThisWeek  DateBucket = "this_week"
	BucketThisMonth DateBucket = "this_month"
	BucketLastMonth DateBucket = "last_month"
	BucketCustom    DateBucket = "custom"
)

// BucketRange resolves a bucket to an inclusive [from, to] date pair using
// the local wall clock. The week starts on Sunday. The second return is false
// for buckets that impose no constraint (All) or supply their own dates
// (Custom).
func BucketRange(bucket DateBucket, now time.Time) (from, to time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case BucketThisWeek:
		// Most recent Sunday at local midnight.
		from = today.AddDate(0, 0, -int(today.Weekday()))
		return from, today, true
	case BucketThisMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return from, today, true
	case BucketLastMonth:
		firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = firstOfThisMonth.AddDate(0, -1, 0)
		to = firstOfThisMonth.AddDate(0, 0, -1)
		return from, to, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
