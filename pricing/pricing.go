package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mo3az99/aura-shop-reborn/models"
)

// Flat shipping fees in EGP. Cairo and Giza are the low-cost delivery zone;
// every other governorate pays the long-haul rate.
var (
	ShippingFeeNear = decimal.NewFromInt(65)
	ShippingFeeFar  = decimal.NewFromInt(100)
)

var nearGovernorates = map[string]bool{
	"cairo": true,
	"giza":  true,
}

// EffectiveUnitPrice returns the sale price when one is set and undercuts
// the list price, otherwise the list price.
func EffectiveUnitPrice(p models.Product) decimal.Decimal {
	if p.SalePrice.Valid && p.SalePrice.Decimal.LessThan(p.Price) {
		return p.SalePrice.Decimal
	}
	return p.Price
}

func LineTotal(item models.CartItem) decimal.Decimal {
	return EffectiveUnitPrice(item.Product).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func CartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item))
	}
	return total
}

func ShippingCost(governorate string) decimal.Decimal {
	if nearGovernorates[strings.ToLower(strings.TrimSpace(governorate))] {
		return ShippingFeeNear
	}
	return ShippingFeeFar
}

func OrderTotal(items []models.CartItem, governorate string) decimal.Decimal {
	return CartTotal(items).Add(ShippingCost(governorate))
}

// Summary is the derived cart view. It is recomputed from the row set on
// every read and never cached across a mutation.
type Summary struct {
	ItemCount int             `json:"item_count"`
	CartTotal decimal.Decimal `json:"cart_total"`
}

func Summarize(items []models.CartItem) Summary {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return Summary{ItemCount: count, CartTotal: CartTotal(items)}
}
