package service

import (
	"fmt"
	"strings"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

// PricingPolicy holds the promotional display rule: rooms whose hourly
// price is above PromoThreshold are advertised at PromoHourly.
type PricingPolicy struct {
	PromoThreshold float64
	PromoHourly    float64
}

// PriceDisplay is what a page shows for a room.
type PriceDisplay struct {
	Hourly         *float64 `json:"hourly,omitempty"`
	OriginalHourly *float64 `json:"original_hourly,omitempty"` // set only when Promo
	Shift          *float64 `json:"shift,omitempty"`
	Promo          bool     `json:"promo"`
}

// Display applies the policy to a room.  A zero policy never substitutes.
func (p PricingPolicy) Display(r model.Room) PriceDisplay {
	d := PriceDisplay{Hourly: r.HourlyPrice, Shift: r.ShiftPrice}
	if r.HourlyPrice == nil || p.PromoHourly <= 0 || p.PromoThreshold <= 0 {
		return d
	}
	if *r.HourlyPrice > p.PromoThreshold && p.PromoHourly < *r.HourlyPrice {
		orig := *r.HourlyPrice
		promo := p.PromoHourly
		d.Hourly = &promo
		d.OriginalHourly = &orig
		d.Promo = true
	}
	return d
}

// FormatBRL renders an amount the way the site prints prices ("R$ 45,00").
// nil renders as "Sob consulta" (on request).
func FormatBRL(v *float64) string {
	if v == nil {
		return "Sob consulta"
	}
	s := fmt.Sprintf("%.2f", *v)
	intPart, dec, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")
	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	out := "R$ " + b.String() + "," + dec
	if neg {
		out = "-" + out
	}
	return out
}
