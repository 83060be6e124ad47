package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost custo médio ponderado después de una entrada de mercadería:
// ((estoque × custo atual) + (entrada × custo entrada)) / (estoque + entrada), redondeado a centavos.
// Si el stock resultante no es positivo devuelve cero.
func WeightedAverageCost(stock int, cost decimal.Decimal, incoming int, incomingCost decimal.Decimal) decimal.Decimal {
	total := stock + incoming
	if total <= 0 {
		return decimal.Zero
	}
	num := cost.Mul(decimal.NewFromInt(int64(stock))).Add(incomingCost.Mul(decimal.NewFromInt(int64(incoming))))
	return num.Div(decimal.NewFromInt(int64(total))).Round(2)
}
