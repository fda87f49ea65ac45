// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ningluweng/Ocular-Omics/internal/catalog"
	"github.com/ningluweng/Ocular-Omics/internal/gds"
	"github.com/ningluweng/Ocular-Omics/internal/ris"
	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain the local series catalog (index, list, get, export)",
	Long: `Catalog keeps parsed GDS series in a local SQLite database, keyed by
accession. Use subcommands to index an export, query the catalog with
full-text search, look up one series, or export everything as RIS.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index <input.txt>",
	Short: "Parse a GDS export and upsert its series into the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records := gds.ParseAll(string(data))
	_, err = store.Index(context.Background(), records, args[0], os.Stdout)
	return err
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Query the catalog with full-text search and filters",
	Long: `List searches the catalog using FTS5 full-text search over titles and
abstracts, an organism filter, or both. Without arguments it lists the
catalog in insertion order.`,
	RunE: runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := catalogOptsFromFlags(cmd, args)
	entries, err := store.List(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatListOutput(entries, jsonOutput)
}

func formatListOutput(entries []catalog.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No series found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-50s  %-20s  %s\n",
		"Accession", "Title", "Organism", "Platform")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, e := range entries {
		title := e.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		organism := e.Organism
		if len(organism) > 20 {
			organism = organism[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-12s  %-50s  %-20s  %s\n",
			e.Key, title, organism, e.Platform)
	}
	return nil
}

// --- get subcommand ---

var catalogGetCmd = &cobra.Command{
	Use:   "get <accession>",
	Short: "Print one cataloged series as an RIS record",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogGet,
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Get(context.Background(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}
	fmt.Print(ris.Format(record))
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole catalog as RIS or YAML",
	RunE:  runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "ris", "":
		return store.ExportRIS(context.Background(), os.Stdout)
	case "yaml":
		return store.ExportYAML(context.Background(), os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use ris or yaml", format)
	}
}

// --- shared helpers ---

func openCatalog(cmd *cobra.Command) (*catalog.Store, error) {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	if dir == "" {
		dir = viper.GetString("catalog.dir")
	}
	cfg := types.CatalogConfig{
		CatalogDir: dir,
		MaxResults: viper.GetInt("catalog.max_results"),
	}
	return catalog.NewStore(cfg)
}

func catalogOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	organism, _ := cmd.Flags().GetString("organism")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Organism:   organism,
		MaxResults: limit,
	}
}

func init() {
	// Shared flag on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "", "directory holding the catalog database (default from config)")

	// List flags.
	catalogListCmd.Flags().String("query", "", "full-text search over titles and abstracts")
	catalogListCmd.Flags().String("organism", "", "filter by organism")
	catalogListCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogListCmd.Flags().Bool("json", false, "output results as JSON")

	// Get flags.
	catalogGetCmd.Flags().Bool("json", false, "output the record as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "ris", "export format: ris or yaml")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
