package metrics

import (
	"strings"
)

// Family names
const (
	Connections = "connections"
	Locks       = "locks"
	BgWriter    = "bgwriter"
)

type (
	SQLs map[int]string

	Metric struct {
		SQLs        SQLs
		Description string   `yaml:"description,omitempty"`
		Columns     []string `yaml:"columns,omitempty"` // columns every SQL version must return
	}

	MetricDefs map[string]Metric

	Metrics struct {
		MetricDefs MetricDefs `yaml:"metrics"`
	}
)

// GetSQL returns the SQL for the exact version or the closest lower one
func (m Metric) GetSQL(version int) string {
	// Check if there's an exact match for i
	if val, ok := m.SQLs[version]; ok {
		return val
	}

	// Find the closest value less than version
	var closestVersion int
	for v := range m.SQLs {
		if v < version && (closestVersion == 0 || v > closestVersion) {
			closestVersion = v
		}
	}
	return m.SQLs[closestVersion]
}

type Measurement map[string]any
type Measurements []Measurement

// Tag is a single descriptive key/value pair attached to a point
type Tag struct {
	Key   string
	Value string
}

// Tags keep their insertion order, which is the order they are printed in
type Tags []Tag

// Get returns the value of the tag with the given key
func (t Tags) Get(key string) (string, bool) {
	for _, tag := range t {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

// Map returns the tags as a plain map
func (t Tags) Map() map[string]string {
	m := make(map[string]string, len(t))
	for _, tag := range t {
		m[tag.Key] = tag.Value
	}
	return m
}

// Point is one resolved metric value ready for output. Points are never retained
// between invocations.
type Point struct {
	Name      string   // scheme and path joined with dots
	Path      []string // segments after the scheme, e.g. ["connections", "active"]
	Value     int64
	Timestamp int64 // unix seconds
	Tags      Tags
}

// Emitter creates points sharing the same scheme and capture timestamp
type Emitter struct {
	Scheme     string
	Timestamp  int64
	SkipTotals bool // omit rollups spanning all databases
}

// Point builds a point for the given path below the scheme
func (e Emitter) Point(value int64, tags Tags, path ...string) Point {
	name := strings.Join(path, ".")
	if e.Scheme != "" {
		name = e.Scheme + "." + name
	}
	return Point{
		Name:      name,
		Path:      path,
		Value:     value,
		Timestamp: e.Timestamp,
		Tags:      tags,
	}
}
