package domain

// OrderSummary is what checkout shows before the order is placed.
type OrderSummary struct {
	ItemCount int
	Subtotal  Money
	Shipping  Money
	Total     Money
}

func (c Cart) Summary(shippingFlatFee Money) (OrderSummary, error) {
	subtotal := c.Subtotal()

	total, err := ComputeOrderTotal(subtotal, shippingFlatFee)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ItemCount: len(c.Items),
		Subtotal:  subtotal,
		Shipping:  shippingFlatFee,
		Total:     total,
	}, nil
}
