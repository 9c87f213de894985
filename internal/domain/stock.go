package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Stock struct {
	StockID     uuid.UUID
	Symbol      string
	CompanyName string
	Sector      string
	IsActive    bool
	LastUpdated time.Time
}

// Sectors lists the CSE GICS-style sector names a stock can be filed under.
var Sectors = []string{
	"Application Software",
	"Banking",
	"Finance",
	"Insurance",
	"Beverage, Food & Tobacco",
	"Chemicals & Pharmaceuticals",
	"Commercial & Professional Services",
	"Construction Engineering",
	"Diversified",
	"Footwear & Textile",
	"Health Care",
	"Hotels",
	"Information Technology",
	"Investment Trusts",
	"Land & Property",
	"Manufacturing",
	"Motor",
	"Oil Palms",
	"Plantations",
	"Power & Energy",
	"Services",
	"Stores & Supplies",
	"Telecommunications",
	"Trading",
	"Transportation",
	"Other",
}

func IsKnownSector(sector string) bool {
	for _, s := range Sectors {
		if strings.EqualFold(s, strings.TrimSpace(sector)) {
			return true
		}
	}
	return false
}
