package admin

import (
	"testing"

	"storefront-service/internal/catalog"
	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := map[string]int{
		"4500":   4500,
		" 120 ":  120,
		"":       0,
		"abc":    0,
		"12.5":   12,
		"4500.5": 4500,
		"1e3":    1,
		"+75":    75,
		"-40":    0,
		"-":      0,
		".5":     0,
		"0":      0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParsePrice(in), "input %q", in)
	}
}

func validDraft() Draft {
	d := NewDraft()
	d.Name = "Rose Pashmina Wrap"
	d.Price = "9900"
	d.Fabric = model.FabricPashmina
	d.Color = "Rose"
	d.Image = "https://example.com/rose.jpg"
	return d
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, "J.", d.Brand)
	assert.Equal(t, model.FabricLawn, d.Fabric)
	assert.Equal(t, model.GenderWomen, d.Gender)
	assert.Equal(t, model.SeasonSummer, d.Season)
	assert.Equal(t, model.OccasionCasual, d.Occasion)
}

func TestDraftValidate(t *testing.T) {
	assert.NoError(t, validDraft().Validate())

	d := validDraft()
	d.Name = " "
	d.Image = ""
	d.Gender = "Kids"
	err := d.Validate()
	assert.ErrorContains(t, err, "name is required")
	assert.ErrorContains(t, err, "image is required")
	assert.ErrorContains(t, err, "gender")
}

func TestDraftProductCreate(t *testing.T) {
	d := validDraft()
	d.Price = "not a number"

	p := d.Product("1700000000000", false)
	assert.Equal(t, "1700000000000", p.ID)
	assert.Equal(t, 0, p.Price)
	assert.True(t, p.IsNew)
	assert.Equal(t, DefaultWhatsIncluded, p.WhatsIncluded)
	assert.Equal(t, DefaultFabricCare, p.FabricCare)
	assert.Equal(t, []string{}, p.Images)
}

func TestDraftRoundTripFromProduct(t *testing.T) {
	for _, p := range catalog.Seed() {
		got := DraftFromProduct(p).Product(p.ID, true)
		assert.Equal(t, p, got)
	}
}

func TestDraftProductDoesNotAliasDefaults(t *testing.T) {
	p := validDraft().Product("x", false)
	p.WhatsIncluded[0] = "changed"
	assert.Equal(t, "Unstitched Set", DefaultWhatsIncluded[0])
}
