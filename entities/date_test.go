package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 15), d)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	base := NewDate(2026, time.March, 15)

	assert.Equal(t, 0, base.DaysUntil(base))
	assert.Equal(t, 5, base.DaysUntil(base.AddDays(5)))
	assert.Equal(t, -3, base.DaysUntil(base.AddDays(-3)))

	// across a month boundary
	assert.Equal(t, 17, base.DaysUntil(NewDate(2026, time.April, 1)))
}

func TestDaysUntilAcrossDSTChange(t *testing.T) {
	// Europe switches clocks in late March; day math must not care.
	before := NewDate(2026, time.March, 28)
	after := NewDate(2026, time.March, 30)
	assert.Equal(t, 2, before.DaysUntil(after))
}

func TestSameMonth(t *testing.T) {
	d := NewDate(2026, time.March, 15)
	assert.True(t, d.SameMonth(NewDate(2026, time.March, 1)))
	assert.False(t, d.SameMonth(NewDate(2026, time.April, 15)))
	assert.False(t, d.SameMonth(NewDate(2025, time.March, 15)))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 5)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-05"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-05"`), &parsed))
	assert.Equal(t, d, parsed)

	require.NoError(t, json.Unmarshal([]byte(`""`), &parsed))
	assert.True(t, parsed.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"05.03.2026"`), &parsed))
}

func TestZeroDateMarshalsEmpty(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}
