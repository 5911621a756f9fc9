package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, GenderWomen.Valid())
	assert.False(t, Gender("women").Valid())
	assert.True(t, FabricPashmina.Valid())
	assert.False(t, Fabric("Denim").Valid())
	assert.True(t, OccasionBridal.Valid())
	assert.True(t, SeasonWinter.Valid())
	assert.False(t, Season("Autumn").Valid())
}

func TestCloneDoesNotAlias(t *testing.T) {
	op := 5500
	p := Product{ID: "1", Images: []string{"a"}, WhatsIncluded: []string{"x"}, OriginalPrice: &op}

	c := p.Clone()
	c.Images[0] = "changed"
	c.WhatsIncluded[0] = "changed"
	*c.OriginalPrice = 1

	assert.Equal(t, "a", p.Images[0])
	assert.Equal(t, "x", p.WhatsIncluded[0])
	assert.Equal(t, 5500, *p.OriginalPrice)
}

func TestGallery(t *testing.T) {
	p := Product{Image: "main", Images: []string{"b", "c"}}
	assert.Equal(t, []string{"main", "b", "c"}, p.Gallery())
	assert.Equal(t, []string{"main"}, Product{Image: "main"}.Gallery())
}

func TestProductJSONShape(t *testing.T) {
	raw := `{"id":"2","name":"Executive Slate Khaddar","brand":"Gul Ahmed","price":4500,"originalPrice":5500,
		"gender":"Men","season":"Winter","fabric":"Khaddar","occasion":"Casual","color":"Slate","image":"img",
		"images":[],"description":"d","whatsIncluded":["w"],"fabricCare":["c"],"isSale":true}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, 4500, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 5500, *p.OriginalPrice)
	assert.True(t, p.IsSale)
	assert.False(t, p.IsNew)
	assert.Equal(t, 9000, CartItem{Product: p, Quantity: 2}.LineTotal())
}
