package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := Normalize(3, 10)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 20, p.Offset)

	p = Normalize(0, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = Normalize(1, 5000)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(Normalize(1, 10), 23)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(23), meta.Total)

	meta = GetMeta(Normalize(1, 10), 30)
	assert.Equal(t, 3, meta.TotalPages)

	meta = GetMeta(Normalize(1, 10), 0)
	assert.Equal(t, 0, meta.TotalPages)
}
