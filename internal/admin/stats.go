package admin

import "storefront-service/internal/model"

// Stats is the console dashboard overview
type Stats struct {
	Total int `json:"total"`
	Women int `json:"women"`
	Men   int `json:"men"`
}

// StatsFor counts the catalog by gender
func StatsFor(products []model.Product) Stats {
	st := Stats{Total: len(products)}
	for _, p := range products {
		switch p.Gender {
		case model.GenderWomen:
			st.Women++
		case model.GenderMen:
			st.Men++
		}
	}
	return st
}
