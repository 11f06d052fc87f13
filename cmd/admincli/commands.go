package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"locotraq/internal/client/admin"
	"locotraq/internal/domain/entities"

	"github.com/spf13/cobra"
)

func newClient() *admin.Client {
	return admin.New(apiURL,
		admin.WithToken(token),
		admin.WithUnauthorizedHook(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'admincli login' again.")
		}),
	)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// loginCmd obtains a session token
var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Obtain a session token with admin credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := os.Getenv("LOCOTRAQ_PASSWORD")
		if password == "" {
			return fmt.Errorf("set LOCOTRAQ_PASSWORD before logging in")
		}
		session, err := newClient().Login(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		fmt.Println(session.Token)
		fmt.Fprintf(os.Stderr, "Session valid until %s. Export LOCOTRAQ_TOKEN to reuse it.\n", session.ExpiresAt)
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List and manage catalog products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all products",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.Product]{Collection: "/admin/products"})
		items, err := mgr.List(cmd.Context(), false)
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product and its hosted image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.Product]{Collection: "/admin/products"})
		if _, err := mgr.List(cmd.Context(), false); err != nil {
			return err
		}
		if err := mgr.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "List and manage blog articles",
}

var blogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all blog articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.Blog]{Collection: "/admin/blogs"})
		items, err := mgr.List(cmd.Context(), false)
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders and advance their status",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.Order]{Collection: "/admin/orders"})
		items, err := mgr.List(cmd.Context(), false)
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

// ordersAdvanceCmd moves an order one step through the fulfillment cycle;
// an explicit status argument sets it directly.
var ordersAdvanceCmd = &cobra.Command{
	Use:   "advance <id> [status]",
	Short: "Advance an order's status, or set it explicitly",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := map[string]any{"advance": true}
		if len(args) == 2 {
			patch = map[string]any{"status": args[1]}
		}
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.Order]{Collection: "/admin/orders"})
		if _, err := mgr.List(cmd.Context(), false); err != nil {
			return err
		}
		updated, err := mgr.SetStatus(cmd.Context(), args[0], patch)
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and manage admin/customer accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.User]{Collection: "/admin/users"})
		items, err := mgr.List(cmd.Context(), false)
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

var usersActiveCmd = &cobra.Command{
	Use:   "set-active <id> <true|false>",
	Short: "Activate or deactivate an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		active := args[1] == "true"
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.User]{Collection: "/admin/users"})
		if _, err := mgr.List(cmd.Context(), false); err != nil {
			return err
		}
		updated, err := mgr.SetStatus(cmd.Context(), args[0], map[string]any{"active": active})
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var (
	quoteType     string
	quoteDevices  string
	quoteServices []string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Estimate and submit tracking quotes",
}

// quoteEstimateCmd runs the cost math locally; no server needed.
var quoteEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a tracking setup",
	RunE: func(cmd *cobra.Command, args []string) error {
		services := make([]entities.AddOnService, 0, len(quoteServices))
		for _, s := range quoteServices {
			services = append(services, entities.AddOnService(strings.TrimSpace(s)))
		}
		cost := admin.EstimateLocal(entities.QuoteSelection{
			TrackingType: entities.TrackingType(quoteType),
			DeviceCount:  quoteDevices,
			Services:     services,
		})
		fmt.Println(cost)
		return nil
	},
}

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List submitted quote requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := admin.NewManager(newClient(), admin.ManagerConfig[entities.QuoteRequest]{Collection: "/admin/quotes"})
		items, err := mgr.List(cmd.Context(), false)
		if err != nil {
			return err
		}
		return printJSON(items)
	},
}

func init() {
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	blogsCmd.AddCommand(blogsListCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersAdvanceCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersActiveCmd)

	quoteEstimateCmd.Flags().StringVar(&quoteType, "type", "vehicle", "tracking type (vehicle|personal|fleet|asset|pet)")
	quoteEstimateCmd.Flags().StringVar(&quoteDevices, "devices", "1", "device count, exact or bucketed (e.g. 10-19)")
	quoteEstimateCmd.Flags().StringSliceVar(&quoteServices, "services", nil, "add-on services (installation,monitoring,maintenance,training,support)")
	quoteCmd.AddCommand(quoteEstimateCmd)
}
