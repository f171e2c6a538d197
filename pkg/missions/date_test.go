package missions_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetary-society/missions/pkg/missions"
)

func TestParseDate(t *testing.T) {
	t.Run("canonical format", func(t *testing.T) {
		d, err := missions.ParseDate("2006-01-19")
		require.NoError(t, err)
		assert.Equal(t, "2006-01-19", d.String())
	})

	t.Run("spreadsheet format", func(t *testing.T) {
		d, err := missions.ParseDate("1/19/2006")
		require.NoError(t, err)
		assert.Equal(t, "2006-01-19", d.String())
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		d, err := missions.ParseDate(" 2006-01-19 ")
		require.NoError(t, err)
		assert.Equal(t, "2006-01-19", d.String())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := missions.ParseDate("")
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := missions.ParseDate("TBD 2030")
		assert.Error(t, err)
	})
}

func TestDateComparisons(t *testing.T) {
	a := missions.NewDate(1977, time.August, 20)
	b := missions.NewDate(1977, time.September, 5)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, a.Equal(missions.NewDate(1977, time.August, 20)))
	assert.False(t, a.IsZero())
	assert.True(t, missions.Date{}.IsZero())
	assert.Empty(t, missions.Date{}.String())
}

func TestDateOf(t *testing.T) {
	d := missions.DateOf(time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2026-08-31", d.String())
}

func TestDateYAML(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		d := missions.NewDate(1990, time.April, 24)
		b, err := d.MarshalYAML()
		require.NoError(t, err)
		assert.Equal(t, "1990-04-24", string(b))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d missions.Date
		require.NoError(t, d.UnmarshalYAML([]byte("1990-04-24")))
		assert.Equal(t, "1990-04-24", d.String())
	})

	t.Run("unmarshal quoted", func(t *testing.T) {
		var d missions.Date
		require.NoError(t, d.UnmarshalYAML([]byte(`"1990-04-24"`)))
		assert.Equal(t, "1990-04-24", d.String())
	})

	t.Run("unmarshal null", func(t *testing.T) {
		var d missions.Date
		require.NoError(t, d.UnmarshalYAML([]byte("null")))
		assert.True(t, d.IsZero())
	})

	t.Run("unmarshal invalid", func(t *testing.T) {
		var d missions.Date
		assert.Error(t, d.UnmarshalYAML([]byte("not-a-date")))
	})
}
