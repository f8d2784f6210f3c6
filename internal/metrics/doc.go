// # Metrics
//
// Code in this folder is responsible for the three statistics families a
// probe can collect and for reshaping their query results into points.
//
// # Content
//
//   - `metrics.yaml` holds the SQL of every family, keyed by the minimal server version.
//   - `default.go` provides access to the built-in definitions.
//   - `buckets.go` holds the create-on-demand aggregation containers.
//   - `connections.go`, `locks.go`, `bgwriter.go` turn measurements into points.
//   - `collect.go` runs a family query and dispatches to its aggregation.
package metrics
