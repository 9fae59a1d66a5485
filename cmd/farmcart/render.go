package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/service"
	"github.com/shopspring/decimal"
)

func printCart(w io.Writer, cart domain.Cart) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ITEM\tUNIT\tQTY\tPRICE\tTOTAL")
	for _, item := range cart.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			item.ID, item.UnitPrice.Unit, item.Quantity, item.UnitPrice.PricePerUnit, item.TotalPriceItem)
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", cart.TotalPrice)

	_ = tw.Flush()
}

func printSummary(w io.Writer, s domain.OrderSummary) {
	fmt.Fprintf(w, "items:    %d\n", s.ItemCount)
	fmt.Fprintf(w, "subtotal: %s\n", s.Subtotal)
	fmt.Fprintf(w, "shipping: %s\n", s.Shipping)
	fmt.Fprintf(w, "total:    %s\n", s.Total)
}

func printFarmWaste(w io.Writer, view service.FarmWasteView) {
	fmt.Fprintf(w, "%s (%s)\n", view.Name, view.ID)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "UNIT\tPRICE\tSTOCK\tEQUALS\tBASE")
	for _, u := range view.DisplayUnits {
		stock := "-"
		if u.Stock.Valid {
			stock = u.Stock.Decimal.String()
		}
		base := ""
		if u.IsBaseUnit {
			base = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.Unit, u.PricePerUnit, stock, domain.ToBaseQuantity(u, decimal.NewFromInt(1)), base)
	}
	_ = tw.Flush()

	if view.UnitsProblem != "" {
		fmt.Fprintf(w, "unit configuration: %s\n", view.UnitsProblem)
		return
	}
	fmt.Fprintf(w, "total stock in base units: %s\n", view.TotalStockInBaseUnits)
}
