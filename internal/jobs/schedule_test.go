package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedInterval_Next(t *testing.T) {
	from := time.Date(2024, 1, 2, 3, 4, 5, 250_000_000, time.UTC)

	tests := []struct {
		name     string
		interval time.Duration
		want     time.Time
	}{
		{name: "sub-second", interval: 300 * time.Millisecond, want: from.Add(300 * time.Millisecond)},
		{name: "fractional seconds", interval: 1500 * time.Millisecond, want: from.Add(1500 * time.Millisecond)},
		{name: "whole seconds", interval: time.Second, want: from.Add(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fixedInterval(tt.interval).Next(from))
		})
	}
}
