package admin

import (
	"errors"
	"strconv"
	"strings"

	"storefront-service/internal/model"
)

var (
	DefaultWhatsIncluded = []string{"Unstitched Set", "Luxury Dupatta", "Coordinating Trousers"}
	DefaultFabricCare    = []string{"Standard Professional Cleaning Recommended"}
)

// Draft is the product form. It carries every product field; Price is the
// raw text typed into the form.
type Draft struct {
	Name          string         `json:"name"`
	Brand         string         `json:"brand"`
	Price         string         `json:"price"`
	OriginalPrice *int           `json:"originalPrice,omitempty"`
	Gender        model.Gender   `json:"gender"`
	Season        model.Season   `json:"season"`
	Fabric        model.Fabric   `json:"fabric"`
	Occasion      model.Occasion `json:"occasion"`
	Color         string         `json:"color"`
	Image         string         `json:"image"`
	Images        []string       `json:"images"`
	Description   string         `json:"description"`
	WhatsIncluded []string       `json:"whatsIncluded"`
	FabricCare    []string       `json:"fabricCare"`
	IsNew         bool           `json:"isNew"`
	IsSale        bool           `json:"isSale"`
}

// NewDraft returns the blank create form
func NewDraft() Draft {
	return Draft{
		Brand:    "J.",
		Gender:   model.GenderWomen,
		Season:   model.SeasonSummer,
		Fabric:   model.FabricLawn,
		Occasion: model.OccasionCasual,
		Images:   []string{},
	}
}

// DraftFromProduct pre-fills the edit form from p
func DraftFromProduct(p model.Product) Draft {
	p = p.Clone()
	return Draft{
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         strconv.Itoa(p.Price),
		OriginalPrice: p.OriginalPrice,
		Gender:        p.Gender,
		Season:        p.Season,
		Fabric:        p.Fabric,
		Occasion:      p.Occasion,
		Color:         p.Color,
		Image:         p.Image,
		Images:        p.Images,
		Description:   p.Description,
		WhatsIncluded: p.WhatsIncluded,
		FabricCare:    p.FabricCare,
		IsNew:         p.IsNew,
		IsSale:        p.IsSale,
	}
}

// Validate applies the form's required-field and choice rules
func (d Draft) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if strings.TrimSpace(d.Image) == "" {
		errs = append(errs, errors.New("image is required"))
	}
	if !d.Gender.Valid() {
		errs = append(errs, errors.New("gender must be one of Men, Women"))
	}
	if !d.Season.Valid() {
		errs = append(errs, errors.New("season must be one of Summer, Winter"))
	}
	if !d.Fabric.Valid() {
		errs = append(errs, errors.New("fabric is not a known fabric"))
	}
	if !d.Occasion.Valid() {
		errs = append(errs, errors.New("occasion must be one of Casual, Festive, Bridal"))
	}
	return errors.Join(errs...)
}

// ParsePrice converts the typed price by reading its leading integer, so
// "4500.5" is 4500. Text without one, and negative values, become 0.
func ParsePrice(text string) int {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(text[:end])
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Product converts the draft. For a create, isNew is forced on; for an
// edit the draft's flag is kept. Empty line-item lists get placeholders.
func (d Draft) Product(id string, editing bool) model.Product {
	p := model.Product{
		ID:            id,
		Name:          d.Name,
		Brand:         d.Brand,
		Price:         ParsePrice(d.Price),
		OriginalPrice: d.OriginalPrice,
		Gender:        d.Gender,
		Season:        d.Season,
		Fabric:        d.Fabric,
		Occasion:      d.Occasion,
		Color:         d.Color,
		Image:         d.Image,
		Images:        d.Images,
		Description:   d.Description,
		WhatsIncluded: d.WhatsIncluded,
		FabricCare:    d.FabricCare,
		IsNew:         d.IsNew || !editing,
		IsSale:        d.IsSale,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if len(p.WhatsIncluded) == 0 {
		p.WhatsIncluded = DefaultWhatsIncluded
	}
	if len(p.FabricCare) == 0 {
		p.FabricCare = DefaultFabricCare
	}
	return p.Clone()
}
