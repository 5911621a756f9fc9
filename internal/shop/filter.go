// Package shop narrows the catalog for the storefront views: the filtered
// shop listing, the search overlay and the product detail page.
package shop

import (
	"fmt"
	"net/url"

	"storefront-service/internal/model"
)

// Filter dimension keys as they appear in the shop query string
const (
	KeyGender   = "gender"
	KeyFabric   = "fabric"
	KeyColor    = "color"
	KeyOccasion = "occasion"
)

// Keys lists the filter dimensions in query-string order
var Keys = []string{KeyGender, KeyFabric, KeyColor, KeyOccasion}

// Selection is the active value per filter dimension. An empty value
// means the dimension is unconstrained.
type Selection struct {
	Gender   string `json:"gender,omitempty"`
	Fabric   string `json:"fabric,omitempty"`
	Color    string `json:"color,omitempty"`
	Occasion string `json:"occasion,omitempty"`
}

// ParseSelection reads the filter dimensions from query parameters.
// Other parameters are ignored.
func ParseSelection(q url.Values) Selection {
	return Selection{
		Gender:   q.Get(KeyGender),
		Fabric:   q.Get(KeyFabric),
		Color:    q.Get(KeyColor),
		Occasion: q.Get(KeyOccasion),
	}
}

// Get returns the active value for key
func (s Selection) Get(key string) (string, error) {
	switch key {
	case KeyGender:
		return s.Gender, nil
	case KeyFabric:
		return s.Fabric, nil
	case KeyColor:
		return s.Color, nil
	case KeyOccasion:
		return s.Occasion, nil
	}
	return "", fmt.Errorf("unknown filter %q", key)
}

func (s *Selection) set(key, value string) error {
	switch key {
	case KeyGender:
		s.Gender = value
	case KeyFabric:
		s.Fabric = value
	case KeyColor:
		s.Color = value
	case KeyOccasion:
		s.Occasion = value
	default:
		return fmt.Errorf("unknown filter %q", key)
	}
	return nil
}

// Active returns the non-empty values in dimension order
func (s Selection) Active() []string {
	var out []string
	for _, v := range []string{s.Gender, s.Fabric, s.Color, s.Occasion} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Values encodes the selection as query parameters
func (s Selection) Values() url.Values {
	q := url.Values{}
	for _, k := range Keys {
		if v, _ := s.Get(k); v != "" {
			q.Set(k, v)
		}
	}
	return q
}

// Location is the shop route for the selection
func (s Selection) Location() string {
	if enc := s.Values().Encode(); enc != "" {
		return "/shop?" + enc
	}
	return "/shop"
}

// Toggle activates value on key, or clears key when value is already the
// active one.
func Toggle(s Selection, key, value string) (Selection, error) {
	current, err := s.Get(key)
	if err != nil {
		return s, err
	}
	if current == value {
		value = ""
	}
	err = s.set(key, value)
	return s, err
}

// Matches reports whether p satisfies every active dimension exactly
func (s Selection) Matches(p model.Product) bool {
	return (s.Gender == "" || string(p.Gender) == s.Gender) &&
		(s.Fabric == "" || string(p.Fabric) == s.Fabric) &&
		(s.Color == "" || p.Color == s.Color) &&
		(s.Occasion == "" || string(p.Occasion) == s.Occasion)
}

// Resolve returns the products matching sel, in catalog order
func Resolve(products []model.Product, sel Selection) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if sel.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Colors returns the distinct color labels in first-seen catalog order
func Colors(products []model.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Color]; ok {
			continue
		}
		seen[p.Color] = struct{}{}
		out = append(out, p.Color)
	}
	return out
}

// Occasions is the fixed list offered by the occasion filter
func Occasions() []string {
	out := make([]string, 0, len(model.Occasions()))
	for _, o := range model.Occasions() {
		out = append(out, string(o))
	}
	return out
}
