package timeago

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "hace menos de 1 minuto"},
		{90 * time.Second, "hace 1 minuto"},
		{59 * time.Minute, "hace 59 minutos"},
		{2 * time.Hour, "hace 2 horas"},
		{25 * time.Hour, "hace 1 día"},
		{29 * 24 * time.Hour, "hace 29 días"},
		{45 * 24 * time.Hour, "hace 1 mes"},
		{11 * 30 * 24 * time.Hour, "hace 11 meses"},
		{395 * 24 * time.Hour, "hace 1 año"},
		{800 * 24 * time.Hour, "hace 2 años"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(now.Add(-tt.ago), now))
		})
	}
}
