package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical windows", at(0), at(2), at(0), at(2), true},
		{"partial overlap", at(0), at(2), at(1), at(3), true},
		{"containment", at(0), at(4), at(1), at(2), true},
		{"touching at boundary", at(0), at(2), at(2), at(4), false},
		{"touching at boundary reversed", at(2), at(4), at(0), at(2), false},
		{"disjoint", at(0), at(1), at(3), at(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
