package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/session"
	"github.com/spf13/cobra"
)

var userID string

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect and change a user's cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(context.Context, *session.Session) error { return nil })
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add [farm-waste-id] [unit-price-id] [quantity]",
	Short: "Add a quantity of one unit of a farm waste",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		farmWasteID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("farm-waste-id: %w", err)
		}
		unitPriceID, err := uuid.Parse(args[1])
		if err != nil {
			return fmt.Errorf("unit-price-id: %w", err)
		}
		quantity, err := parseQuantity(args[2])
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			return s.AddItem(ctx, farmWasteID, unitPriceID, quantity)
		})
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update [item-id] [quantity]",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("item-id: %w", err)
		}
		quantity, err := parseQuantity(args[1])
		if err != nil {
			return err
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			return s.UpdateQuantity(ctx, itemID, quantity)
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("item-id: %w", err)
		}

		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			return s.RemoveItem(ctx, itemID)
		})
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every line of the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			return s.ClearCart(ctx)
		})
	},
}

var cartSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print subtotal, flat shipping and total",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, s *session.Session) error {
			summary, err := s.Summary(ctx)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), summary)
			return nil
		})
	},
}

func init() {
	cartCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "cart owner")
	_ = cartCmd.MarkPersistentFlagRequired("user")

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartUpdateCmd, cartRemoveCmd, cartClearCmd, cartSummaryCmd)
}

// withSession opens a session for --user, runs fn and prints the resulting cart.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session.Session) error) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := session.Open(ctx, a.carts, userID, "", logger)
	if err != nil {
		return fmt.Errorf("session.Open: %w", err)
	}
	defer s.Close()

	if err := fn(ctx, s); err != nil {
		return err
	}

	printCart(cmd.OutOrStdout(), s.Cart())
	return nil
}

func parseQuantity(arg string) (int64, error) {
	quantity, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quantity must be a whole number: %w", err)
	}

	return quantity, nil
}
