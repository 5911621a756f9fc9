package shop

import (
	"testing"

	"storefront-service/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	products := catalog.Seed()

	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"too short", "s", []string{}},
		{"empty", "", []string{}},
		{"name match ignores case", "SILK", []string{"1"}},
		{"brand match", "gul", []string{"2", "5"}},
		{"name or brand", "la", []string{"2", "3"}},
		{"nothing", "denim", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Search(products, tt.q)))
		})
	}
}

func TestDetail(t *testing.T) {
	products := catalog.Seed()

	p, ok := Detail(products, "4")
	assert.True(t, ok)
	assert.Equal(t, "Midnight Wool Edition", p.Name)

	p, ok = Detail(products, "missing")
	assert.True(t, ok)
	assert.Equal(t, "1", p.ID)

	_, ok = Detail(nil, "1")
	assert.False(t, ok)
}
