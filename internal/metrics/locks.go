package metrics

// AggregateLocks groups pg_locks rows by database and lower-cased lock mode.
// Global per type counts come first, tagged with schema=total.
func AggregateLocks(data Measurements, e Emitter) []Point {
	buckets := NewLockBuckets()
	for _, row := range data {
		datname := databaseBucket(row["datname"])
		mode, ok := asString(row["mode"])
		if !ok {
			mode = UnknownLockType
		}
		buckets.Add(datname, mode, asInt64(row["count"]))
	}

	var points []Point
	if !e.SkipTotals {
		for _, lockType := range buckets.Total.Types() {
			points = append(points, e.Point(buckets.Total[lockType],
				Tags{{"schema", "total"}, {"lock_type", lockType}}, Locks))
		}
	}
	for _, datname := range buckets.Names() {
		locks := buckets.PerDB[datname]
		for _, lockType := range locks.Types() {
			points = append(points, e.Point(locks[lockType],
				Tags{{"schema", datname}, {"lock_type", lockType}}, Locks, lockType))
		}
	}
	return points
}
