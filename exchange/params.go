// Copyright (c) 2025 BVK Chaitanya

package exchange

// Params returns the request as flat key-value pairs using the exchange's
// parameter names. Keys for unset optional fields are omitted.
func (r *OrderRequest) Params() map[string]string {
	m := map[string]string{
		"symbol":   r.Symbol,
		"side":     r.Side,
		"type":     r.Type,
		"quantity": r.Quantity.String(),
	}
	if r.Price.Valid {
		m["price"] = r.Price.Decimal.String()
	}
	if r.StopPrice.Valid {
		m["stopPrice"] = r.StopPrice.Decimal.String()
	}
	if r.TimeInForce != "" {
		m["timeInForce"] = r.TimeInForce
	}
	if r.ClientOrderID != "" {
		m["newClientOrderId"] = r.ClientOrderID
	}
	return m
}
