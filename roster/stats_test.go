package roster

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert"
)

func TestStats(t *testing.T) {
	r := testRoster(t) // (1,"A",90), (2,"B",30), (3,"C",40)
	s, err := r.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "53.33", fmt.Sprintf("%.2f", s.Average))
	assert.Equal(t, 90, s.Max)
	assert.Equal(t, 30, s.Min)
	assert.Equal(t, 2, s.PassCount)
	assert.Equal(t, 1, s.FailCount)
	assert.Equal(t, "66.7", fmt.Sprintf("%.1f", s.PassRate))
}

func TestStatsEmpty(t *testing.T) {
	_, err := New().Stats()
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestStatsSingle(t *testing.T) {
	r := New()
	r.Add(Record{Roll: 1, Name: "A", Marks: PassThreshold})
	s, err := r.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, PassThreshold, s.Min)
	assert.Equal(t, PassThreshold, s.Max)
	assert.Equal(t, 1, s.PassCount)
	assert.Equal(t, 0, s.FailCount)
	assert.Equal(t, 100.0, s.PassRate)
}
