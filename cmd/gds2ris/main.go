// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the gds2ris CLI, which converts
// NCBI GEO DataSets (GDS) plaintext exports into RIS citation files and
// maintains a local catalog of the parsed series.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ningluweng/Ocular-Omics/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, otherwise the secret value
// for key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the gds2ris CLI.
var rootCmd = &cobra.Command{
	Use:   "gds2ris",
	Short: "Convert GEO DataSets exports to RIS citations",
	Long: `gds2ris turns the numbered plaintext export of an NCBI GEO DataSets (GDS)
search into RIS records that reference managers can import.

Each step is a subcommand: fetch pulls a GDS export from NCBI, convert
turns an export into an RIS file, inspect shows the parsed fields, and
catalog keeps a queryable local index of every series seen.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./gds2ris.yaml or ~/.config/gds2ris/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gds2ris")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gds2ris"))
		}
	}

	viper.SetEnvPrefix("GDS2RIS")
	viper.AutomaticEnv()

	viper.SetDefault("convert.output", "output.ris")
	viper.SetDefault("convert.preview_titles", 3)
	viper.SetDefault("fetch.retmax", 100)
	viper.SetDefault("fetch.timeout", "30s")
	viper.SetDefault("fetch.user_agent", "gds2ris/"+version)
	viper.SetDefault("catalog.dir", "catalog")
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
