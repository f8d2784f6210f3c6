package metrics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cybertec-postgresql/pgprobes/internal/db"
	"github.com/cybertec-postgresql/pgprobes/internal/log"
	"github.com/jackc/pgx/v5"
)

// Aggregator reshapes query measurements into points
type Aggregator func(data Measurements, e Emitter) []Point

var aggregators = map[string]Aggregator{
	Connections: AggregateConnections,
	Locks:       AggregateLocks,
	BgWriter:    AggregateBgWriter,
}

// Families returns the names of all supported metric families
func Families() []string {
	return []string{Connections, Locks, BgWriter}
}

// QueryMeasurements runs the statement and returns rows as column name to value maps
func QueryMeasurements(ctx context.Context, conn db.Querier, sql string, args ...any) (Measurements, error) {
	if strings.TrimSpace(sql) == "" {
		return nil, errors.New("empty SQL")
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collectMeasurements(rows)
}

func collectMeasurements(rows pgx.Rows) (Measurements, error) {
	defer rows.Close()
	fields := rows.FieldDescriptions()
	data := make(Measurements, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		m := make(Measurement, len(values))
		for i, v := range values {
			if i < len(fields) {
				m[fields[i].Name] = v
			}
		}
		data = append(data, m)
	}
	return data, rows.Err()
}

// Collect runs the family query matching the server version and aggregates the result.
// Query errors are wrapped in db.ErrQuery.
func Collect(ctx context.Context, conn db.Querier, family string, version int, e Emitter) ([]Point, error) {
	aggregate, ok := aggregators[family]
	if !ok {
		return nil, fmt.Errorf("unknown metric family %q", family)
	}
	m, err := GetMetricDef(family)
	if err != nil {
		return nil, err
	}
	sql := m.GetSQL(version)
	logger := log.GetLogger(ctx).WithField("metric", family).WithField("version", version)
	logger.WithField("sql", sql).Debug("querying statistics")
	data, err := QueryMeasurements(ctx, conn, sql)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", db.ErrQuery, family, err)
	}
	points := aggregate(data, e)
	logger.WithField("rows", len(data)).WithField("points", len(points)).Debug("statistics aggregated")
	return points, nil
}
