package metrics

// AggregateConnections groups pg_stat_activity rows by database and waiting flag.
// Output order: per database active, waiting and total, then the rollup.
func AggregateConnections(data Measurements, e Emitter) []Point {
	buckets := make(ConnectionBuckets)
	for _, row := range data {
		datname := databaseBucket(row["datname"])
		buckets.Add(datname, asFlag(row["waiting"]), asInt64(row["count"]))
	}

	points := make([]Point, 0, 3*(len(buckets)+1))
	emit := func(datname string, c ConnectionCounters) {
		tags := Tags{{"schema", datname}}
		points = append(points,
			e.Point(c.Active, tags, Connections, "active"),
			e.Point(c.Waiting, tags, Connections, "waiting"),
			e.Point(c.Total, tags, Connections, "total"),
		)
	}
	for _, datname := range buckets.Names() {
		emit(datname, *buckets[datname])
	}
	if !e.SkipTotals {
		emit(TotalBucket, buckets.Rollup())
	}
	return points
}
