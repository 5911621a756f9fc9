package model

// Gender is the department a product is listed under
type Gender string

// Season is the collection season of a product
type Season string

// Fabric is the primary material of a product
type Fabric string

// Occasion is the styling occasion a product is curated for
type Occasion string

const (
	GenderMen   Gender = "Men"
	GenderWomen Gender = "Women"

	SeasonSummer Season = "Summer"
	SeasonWinter Season = "Winter"

	FabricLawn     Fabric = "Lawn"
	FabricCotton   Fabric = "Cotton"
	FabricKhaddar  Fabric = "Khaddar"
	FabricKarandi  Fabric = "Karandi"
	FabricPashmina Fabric = "Pashmina"
	FabricSilk     Fabric = "Silk"
	FabricWool     Fabric = "Wool"

	OccasionCasual  Occasion = "Casual"
	OccasionFestive Occasion = "Festive"
	OccasionBridal  Occasion = "Bridal"
)

// Genders lists the departments in display order
func Genders() []Gender { return []Gender{GenderWomen, GenderMen} }

// Seasons lists the seasons in display order
func Seasons() []Season { return []Season{SeasonSummer, SeasonWinter} }

// Fabrics lists the fabrics in display order
func Fabrics() []Fabric {
	return []Fabric{FabricLawn, FabricCotton, FabricKhaddar, FabricKarandi, FabricPashmina, FabricSilk, FabricWool}
}

// Occasions lists the occasions in display order
func Occasions() []Occasion { return []Occasion{OccasionCasual, OccasionFestive, OccasionBridal} }

func (g Gender) Valid() bool   { return contains(Genders(), g) }
func (s Season) Valid() bool   { return contains(Seasons(), s) }
func (f Fabric) Valid() bool   { return contains(Fabrics(), f) }
func (o Occasion) Valid() bool { return contains(Occasions(), o) }

func contains[T comparable](all []T, v T) bool {
	for _, a := range all {
		if a == v {
			return true
		}
	}
	return false
}

// Product is a catalog entry. The JSON shape is the persisted record shape.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"originalPrice,omitempty"`
	Gender        Gender   `json:"gender"`
	Season        Season   `json:"season"`
	Fabric        Fabric   `json:"fabric"`
	Occasion      Occasion `json:"occasion"`
	Color         string   `json:"color"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
	WhatsIncluded []string `json:"whatsIncluded"`
	FabricCare    []string `json:"fabricCare"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsSale        bool     `json:"isSale,omitempty"`
}

// Clone returns a deep copy so callers cannot alias store-owned slices
func (p Product) Clone() Product {
	c := p
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		c.OriginalPrice = &v
	}
	c.Images = cloneStrings(p.Images)
	c.WhatsIncluded = cloneStrings(p.WhatsIncluded)
	c.FabricCare = cloneStrings(p.FabricCare)
	return c
}

// Gallery returns the primary image followed by the additional images
func (p Product) Gallery() []string {
	out := make([]string, 0, len(p.Images)+1)
	out = append(out, p.Image)
	return append(out, p.Images...)
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
