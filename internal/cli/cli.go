// Package cli implements the billingctl operator commands.
package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"apartment-be-svc/internal/app"
	"apartment-be-svc/internal/models"
	"apartment-be-svc/internal/models/request"
)

// Loader builds the services a command runs against; release frees them afterwards
type Loader func() (services *app.Services, release func(), err error)

// NewRootCmd creates the billingctl command tree
func NewRootCmd(load Loader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "billingctl",
		Short:         "Operate apartment billing from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		collectCmd(load),
		rollbackCmd(load),
		remindersCmd(load),
		confirmPaymentCmd(load),
	)

	return rootCmd
}

func collectCmd(load Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Bill every resident with an apartment",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rent",
		Short: "Bill the configured monthly rent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(load, func(s *app.Services) error {
				result, err := s.Billing.Collect(cmd.Context(), request.BulkCollectRequest{Type: request.FeeTypeRent})
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			})
		},
	})

	var (
		name  string
		price string
		tax   string
	)
	other := &cobra.Command{
		Use:   "other",
		Short: "Bill a one-off charge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.BulkCollectRequest{Type: request.FeeTypeOther, Name: name}
			if price != "" {
				p, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("invalid --price %q: %w", price, err)
				}
				req.Price = &p
			}
			if tax != "" {
				t, err := decimal.NewFromString(tax)
				if err != nil {
					return fmt.Errorf("invalid --tax %q: %w", tax, err)
				}
				req.Tax = &t
			}

			return withServices(load, func(s *app.Services) error {
				result, err := s.Billing.Collect(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			})
		},
	}
	other.Flags().StringVar(&name, "name", "", "charge name")
	other.Flags().StringVar(&price, "price", "", "unit price")
	other.Flags().StringVar(&tax, "tax", "", "tax percentage, 0 to 100")
	cmd.AddCommand(other)

	return cmd
}

func rollbackCmd(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Delete each resident's most recent billing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(load, func(s *app.Services) error {
				result, err := s.Billing.Rollback(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			})
		},
	}
}

func remindersCmd(load Loader) *cobra.Command {
	var reminderType string

	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Inspect or send billing reminders",
	}
	cmd.PersistentFlags().StringVar(&reminderType, "type", string(models.ReminderType3Days),
		"reminder type: "+strings.Join(models.ReminderTypes(), ", "))

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List residents eligible for a reminder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(load, func(s *app.Services) error {
				batches, err := s.Reminder.FindEligible(cmd.Context(), models.ReminderType(reminderType))
				if err != nil {
					return err
				}
				return printJSON(cmd, batches)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "send",
		Short: "Email every eligible resident",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(load, func(s *app.Services) error {
				result, err := s.Reminder.SendReminders(cmd.Context(), models.ReminderType(reminderType))
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			})
		},
	})

	return cmd
}

func confirmPaymentCmd(load Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm-payment <billing-id>...",
		Short: "Mark billings as paid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]uint, 0, len(args))
			for _, arg := range args {
				for _, part := range strings.Split(arg, ",") {
					if part = strings.TrimSpace(part); part == "" {
						continue
					}
					id, err := strconv.ParseUint(part, 10, 32)
					if err != nil {
						return fmt.Errorf("invalid billing ID %q: %w", part, err)
					}
					ids = append(ids, uint(id))
				}
			}

			return withServices(load, func(s *app.Services) error {
				result, err := s.Billing.ConfirmPayment(cmd.Context(), ids)
				if err != nil {
					return err
				}
				return printJSON(cmd, result)
			})
		},
	}
}

func withServices(load Loader, fn func(s *app.Services) error) error {
	services, release, err := load()
	if err != nil {
		return err
	}
	if release != nil {
		defer release()
	}
	return fn(services)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
