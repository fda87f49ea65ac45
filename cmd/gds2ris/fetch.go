// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ningluweng/Ocular-Omics/internal/fetch"
	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <term...>",
	Short: "Fetch a GDS export from NCBI E-utilities",
	Long: `Fetch searches the NCBI GEO DataSets database for a term and saves the
plaintext summary export, ready for the convert command.

An NCBI API key raises the rate limit; put one in .secrets/ncbi-api-key
or pass --api-key.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	out, _ := cmd.Flags().GetString("out")
	apiKey, _ := cmd.Flags().GetString("api-key")
	retmax, _ := cmd.Flags().GetInt("retmax")
	if retmax <= 0 {
		retmax = viper.GetInt("fetch.retmax")
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("fetch.timeout"),
			UserAgent: viper.GetString("fetch.user_agent"),
		},
		RetMax: retmax,
		APIKey: secretDefault("ncbi-api-key", apiKey),
	}

	client := &fetch.Client{HTTP: &http.Client{Timeout: cfg.Timeout}}
	n, err := fetch.Fetch(context.Background(), client, term, out, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no series matched %q", term)
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("out", "gds_result.txt", "file to save the export to")
	fetchCmd.Flags().Int("retmax", 0, "maximum series to fetch (0 = use config default)")
	fetchCmd.Flags().String("api-key", "", "NCBI API key (overrides .secrets/ncbi-api-key)")

	rootCmd.AddCommand(fetchCmd)
}
