package metrics

// BgWriterCounters lists the emitted pg_stat_bgwriter counters in output order
var BgWriterCounters = []string{
	"checkpoints_timed",
	"checkpoints_req",
	"buffers_checkpoint",
	"buffers_clean",
	"maxwritten_clean",
	"buffers_backend",
	"buffers_alloc",
}

// AggregateBgWriter emits every counter of the single statistics row.
// A NULL counter is reported as zero.
func AggregateBgWriter(data Measurements, e Emitter) []Point {
	points := make([]Point, 0, len(BgWriterCounters)*len(data))
	for _, row := range data {
		for _, counter := range BgWriterCounters {
			points = append(points, e.Point(asInt64(row[counter]), nil, BgWriter, counter))
		}
	}
	return points
}
