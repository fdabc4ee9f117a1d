package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astranode/astranode-nft/host"
	"github.com/astranode/astranode-nft/sdk"
)

var (
	endpoint string
	sender   string
	contract string
)

func client() *sdk.Client {
	return sdk.NewClient(sdk.Config{
		Endpoint: endpoint,
		Sender:   sender,
		Contract: contract,
	})
}

func parseAmount(s, what string) (host.Uint128, error) {
	v, err := host.ParseUint128(s)
	if err != nil {
		return host.Uint128{}, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return v, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "astra-nft",
	Short: "CLI for the AstraNode NFT registry",
	Long:  `Mint, buy, and reprice NFTs, and inspect registry state`,
}

var mintCmd = &cobra.Command{
	Use:   "mint <token-id> <owner> <token-uri> <price>",
	Short: "Mint an NFT",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := parseAmount(args[3], "price")
		if err != nil {
			return err
		}
		txid, err := client().Mint(cmd.Context(), args[0], args[1], args[2], price)
		if err != nil {
			return err
		}
		fmt.Printf("Minted %s (tx %s)\n", args[0], txid)
		return nil
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <token-id> <payment>",
	Short: "Buy an NFT, paying the attached amount of uastra",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		payment, err := parseAmount(args[1], "payment")
		if err != nil {
			return err
		}
		txid, err := client().Buy(cmd.Context(), args[0], payment)
		if err != nil {
			return err
		}
		fmt.Printf("Bought %s (tx %s)\n", args[0], txid)
		return nil
	},
}

var setPriceCmd = &cobra.Command{
	Use:   "set-price <token-id> <new-price>",
	Short: "Change the listed price of an NFT you own",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := parseAmount(args[1], "price")
		if err != nil {
			return err
		}
		txid, err := client().UpdatePrice(cmd.Context(), args[0], price)
		if err != nil {
			return err
		}
		fmt.Printf("Repriced %s to %s (tx %s)\n", args[0], price.String(), txid)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <token-id>",
	Short: "Show a single NFT record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nft, err := client().GetNft(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(nft)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List NFT records in ascending token id order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var startAfter *string
		if s, _ := cmd.Flags().GetString("start-after"); s != "" {
			startAfter = &s
		}
		var limit *uint32
		if n, _ := cmd.Flags().GetUint32("limit"); n > 0 {
			limit = &n
		}
		nfts, err := client().GetAllNfts(cmd.Context(), startAfter, limit)
		if err != nil {
			return err
		}
		return printJSON(nfts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:4000", "Ledger gateway endpoint")
	rootCmd.PersistentFlags().StringVar(&sender, "sender", "", "Sender address for transactions")
	rootCmd.PersistentFlags().StringVar(&contract, "contract", "", "NFT registry contract ID")

	listCmd.Flags().String("start-after", "", "Resume listing after this token id")
	listCmd.Flags().Uint32("limit", 0, "Maximum number of records (0 = all)")

	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(setPriceCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
