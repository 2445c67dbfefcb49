package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(startHour, startMin, endHour, endMin int) Interval {
	day := time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC)
	return Interval{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{"identical", interval(10, 30, 11, 0), interval(10, 30, 11, 0), true},
		{"partial overlap at start", interval(11, 30, 12, 0), interval(11, 20, 11, 40), true},
		{"partial overlap at end", interval(11, 30, 12, 0), interval(11, 50, 12, 10), true},
		{"a contains b", interval(10, 0, 12, 0), interval(10, 30, 11, 0), true},
		{"b contains a", interval(10, 30, 11, 0), interval(10, 0, 12, 0), true},
		{"back-to-back before", interval(11, 30, 12, 0), interval(11, 0, 11, 30), false},
		{"back-to-back after", interval(11, 30, 12, 0), interval(12, 0, 12, 30), false},
		{"disjoint", interval(8, 0, 9, 0), interval(14, 0, 15, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestInterval_IsValid(t *testing.T) {
	assert.True(t, interval(10, 0, 10, 15).IsValid())
	assert.False(t, interval(10, 15, 10, 0).IsValid())
	assert.False(t, interval(10, 0, 10, 0).IsValid())
}
