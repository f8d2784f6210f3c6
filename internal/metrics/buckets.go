package metrics

import (
	"maps"
	"slices"
	"strings"
)

const (
	// TotalBucket is the name of the rollup spanning all databases
	TotalBucket = "_total"
	// UnknownDatabase collects rows with a NULL database name
	UnknownDatabase = "_unknown"
	// UnknownLockType collects rows with a NULL lock mode
	UnknownLockType = "unknown"
)

// databaseBucket returns the bucket name of a datname value. Real databases
// named like a reserved bucket get one more leading underscore, so `_total`
// and `_unknown` only ever denote the rollup and NULL names.
func databaseBucket(v any) string {
	datname, ok := asString(v)
	if !ok {
		return UnknownDatabase
	}
	if strings.HasPrefix(datname, "_") {
		switch "_" + strings.TrimLeft(datname, "_") {
		case TotalBucket, UnknownDatabase:
			return "_" + datname
		}
	}
	return datname
}

// ConnectionCounters is the per database connection accumulator
type ConnectionCounters struct {
	Active  int64
	Waiting int64
	Total   int64
}

// ConnectionBuckets maps a database name to its connection counters
type ConnectionBuckets map[string]*ConnectionCounters

// Get returns the counters of the database, creating zeroed ones on first access
func (b ConnectionBuckets) Get(datname string) *ConnectionCounters {
	c, ok := b[datname]
	if !ok {
		c = &ConnectionCounters{}
		b[datname] = c
	}
	return c
}

// Add accounts count connections of the database. Rows with an unknown waiting
// flag still contribute to the total.
func (b ConnectionBuckets) Add(datname string, waiting flag, count int64) {
	c := b.Get(datname)
	c.Total += count
	switch waiting {
	case flagTrue:
		c.Waiting += count
	case flagFalse:
		c.Active += count
	}
}

// Rollup sums the counters of every database
func (b ConnectionBuckets) Rollup() (total ConnectionCounters) {
	for _, c := range b {
		total.Active += c.Active
		total.Waiting += c.Waiting
		total.Total += c.Total
	}
	return
}

// Names returns database names in lexical order
func (b ConnectionBuckets) Names() []string {
	return slices.Sorted(maps.Keys(b))
}

// LockCounters maps a lock type to its count
type LockCounters map[string]int64

// Types returns lock types in lexical order
func (c LockCounters) Types() []string {
	return slices.Sorted(maps.Keys(c))
}

// LockBuckets keeps per database and global lock counts in step
type LockBuckets struct {
	Total LockCounters
	PerDB map[string]LockCounters
}

func NewLockBuckets() *LockBuckets {
	return &LockBuckets{
		Total: make(LockCounters),
		PerDB: make(map[string]LockCounters),
	}
}

// Get returns the counters of the database, creating an empty set on first access
func (b *LockBuckets) Get(datname string) LockCounters {
	c, ok := b.PerDB[datname]
	if !ok {
		c = make(LockCounters)
		b.PerDB[datname] = c
	}
	return c
}

// Add accounts count locks of the given mode. The mode is lower-cased.
func (b *LockBuckets) Add(datname, mode string, count int64) {
	lockType := strings.ToLower(mode)
	b.Get(datname)[lockType] += count
	b.Total[lockType] += count
}

// Names returns database names in lexical order
func (b *LockBuckets) Names() []string {
	return slices.Sorted(maps.Keys(b.PerDB))
}
