package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	apiURL string
	token  string
)

// rootCmd is the back-office command line entry point
var rootCmd = &cobra.Command{
	Use:   "admincli",
	Short: "Locotraq back-office command line",
	Long: `Administer the Locotraq store from the terminal.

Available subcommands:
  login    - Obtain a session token with admin credentials
  products - List and manage catalog products
  blogs    - List and manage blog articles
  orders   - List orders and advance their status
  users    - List and manage admin/customer accounts
  quote    - Estimate and submit tracking quotes
  quotes   - List submitted quote requests`,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envDefault("LOCOTRAQ_API", "http://localhost:8080/api"), "base URL of the Locotraq API")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("LOCOTRAQ_TOKEN"), "session token (from 'admincli login')")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(blogsCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(quotesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
