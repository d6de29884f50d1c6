package domain_test

import (
	"testing"
	"time"

	"github.com/quocbank/qbank_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNextRunAfter(t *testing.T) {
	base := time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		current   time.Time
		frequency domain.Frequency
		want      time.Time
	}{
		{
			name:      "daily adds one day",
			current:   base,
			frequency: domain.Daily,
			want:      time.Date(2025, 8, 16, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly adds seven days",
			current:   base,
			frequency: domain.Weekly,
			want:      time.Date(2025, 8, 22, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly adds one calendar month",
			current:   base,
			frequency: domain.Monthly,
			want:      time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly from Jan 31 rolls into March",
			current:   time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC),
			frequency: domain.Monthly,
			want:      time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			name:      "daily across a month boundary",
			current:   time.Date(2025, 8, 31, 8, 0, 0, 0, time.UTC),
			frequency: domain.Daily,
			want:      time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NextRunAfter(tt.current, tt.frequency))
		})
	}
}

func TestValidFrequency(t *testing.T) {
	assert.True(t, domain.ValidFrequency(domain.Daily))
	assert.True(t, domain.ValidFrequency(domain.Weekly))
	assert.True(t, domain.ValidFrequency(domain.Monthly))
	assert.False(t, domain.ValidFrequency(domain.Frequency("YEARLY")))
	assert.False(t, domain.ValidFrequency(domain.Frequency("")))
}
