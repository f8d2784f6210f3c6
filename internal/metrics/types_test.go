package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSQL(t *testing.T) {
	m := Metric{SQLs: SQLs{0: "zero", 90600: "nine six", 100000: "ten"}}
	tests := []struct {
		version int
		want    string
	}{
		{90500, "zero"},
		{90600, "nine six"},
		{90624, "nine six"},
		{100000, "ten"},
		{170002, "ten"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.GetSQL(tt.version), "version %d", tt.version)
	}
	assert.Empty(t, Metric{}.GetSQL(120000))
}

func TestTags(t *testing.T) {
	tags := Tags{{"schema", "a"}, {"lock_type", "exclusivelock"}}
	v, ok := tags.Get("lock_type")
	assert.True(t, ok)
	assert.Equal(t, "exclusivelock", v)
	_, ok = tags.Get("foo")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"schema": "a", "lock_type": "exclusivelock"}, tags.Map())
	assert.Empty(t, Tags(nil).Map())
}

func TestEmitterPoint(t *testing.T) {
	e := Emitter{Scheme: "host1.postgresql", Timestamp: 1700000000}
	p := e.Point(42, Tags{{"schema", "a"}}, "connections", "active")
	assert.Equal(t, "host1.postgresql.connections.active", p.Name)
	assert.Equal(t, []string{"connections", "active"}, p.Path)
	assert.EqualValues(t, 42, p.Value)
	assert.EqualValues(t, 1700000000, p.Timestamp)

	p = Emitter{}.Point(1, nil, "locks")
	assert.Equal(t, "locks", p.Name)
}

func TestConvert(t *testing.T) {
	assert.EqualValues(t, 3, asInt64(int64(3)))
	assert.EqualValues(t, 3, asInt64(int32(3)))
	assert.EqualValues(t, 3, asInt64(3))
	assert.EqualValues(t, 3, asInt64(3.9))
	assert.EqualValues(t, 12, asInt64(" 12 "))
	assert.EqualValues(t, 12, asInt64([]byte("12")))
	assert.EqualValues(t, 0, asInt64(nil))
	assert.EqualValues(t, 0, asInt64("n/a"))
	assert.EqualValues(t, 0, asInt64(struct{}{}))

	assert.Equal(t, flagTrue, asFlag(true))
	assert.Equal(t, flagTrue, asFlag("t"))
	assert.Equal(t, flagFalse, asFlag(false))
	assert.Equal(t, flagFalse, asFlag("false"))
	assert.Equal(t, flagUnknown, asFlag(nil))
	assert.Equal(t, flagUnknown, asFlag("maybe"))

	s, ok := asString(nil)
	assert.False(t, ok)
	assert.Empty(t, s)
	s, ok = asString([]byte("db"))
	assert.True(t, ok)
	assert.Equal(t, "db", s)
	s, _ = asString(7)
	assert.Equal(t, "7", s)
}
