// keygen prints random API keys for the go_ytnotion HTTP transport.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_ytnotion/internal/keygen"
)

var (
	keyLength int
	keyCount  int
)

var rootCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate secure API keys for the MCP server",
	Long: `Generate random alphanumeric API keys from a cryptographically secure source.

Examples:
  keygen                       # One 32-character key
  keygen --length 48 --count 3 # Three 48-character keys`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		keys, err := keygen.GenerateN(keyCount, keyLength)
		if err != nil {
			return err
		}
		printKeys(cmd.OutOrStdout(), keys, keyLength)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&keyLength, "length", keygen.DefaultLength, "Length of API key")
	rootCmd.Flags().IntVar(&keyCount, "count", 1, "Number of API keys to generate")
}

func printKeys(w io.Writer, keys []string, length int) {
	fmt.Fprintf(w, "Generating %d API key(s) with length %d:\n\n", len(keys), length)
	for i, k := range keys {
		fmt.Fprintf(w, "Key %d: %s\n", i+1, k)
	}
	fmt.Fprintln(w)
	if len(keys) == 1 {
		fmt.Fprintln(w, "For your .env file, use:")
	} else {
		fmt.Fprintln(w, "For your .env file, use one of:")
	}
	for _, k := range keys {
		fmt.Fprintf(w, "MCP_API_KEY=%s\n", k)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keep these keys secure and don't share them publicly!")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
