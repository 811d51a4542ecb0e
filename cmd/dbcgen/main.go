// Package main contains the cli implementation of the tool. It uses cobra
// package for cli tool implementation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dbcgen/internal/config"
	"dbcgen/internal/driver"
	"dbcgen/internal/schema"
)

// versionDefaults is the stock workspace layout: schema XML lives under
// ./schema/<version>, generated Go sources land under ./tables/<version>.
var versionDefaults = map[schema.Version]struct{ schemaDir, tablesDir string }{
	schema.VersionVanilla: {schemaDir: "schema/vanilla", tablesDir: "tables/vanilla"},
	schema.VersionTBC:     {schemaDir: "schema/tbc", tablesDir: "tables/tbc"},
	schema.VersionWrath:   {schemaDir: "schema/wrath", tablesDir: "tables/wrath"},
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbcgen",
		Short: "Generate typed DBC table readers/writers from XML schema",
	}

	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Parse every version's XML schema and regenerate its Go tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
}

func runGenerate(cmd *cobra.Command) error {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	enums := schema.DefaultEnumCatalog()

	for _, v := range schema.Versions() {
		paths := resolvePaths(v, cfg)

		res, err := driver.Run(paths, enums)
		if err != nil {
			return fmt.Errorf("generate %s: %w", v, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: generated %d tables into %s\n", v, res.TableCount, paths.TablesDir)
	}

	return nil
}

func resolvePaths(v schema.Version, cfg config.Config) driver.Paths {
	d := versionDefaults[v]
	schemaDir, tablesDir := d.schemaDir, d.tablesDir

	switch v {
	case schema.VersionVanilla:
		if cfg.Schema.Vanilla != "" {
			schemaDir = cfg.Schema.Vanilla
		}
	case schema.VersionTBC:
		if cfg.Schema.TBC != "" {
			schemaDir = cfg.Schema.TBC
		}
	case schema.VersionWrath:
		if cfg.Schema.Wrath != "" {
			schemaDir = cfg.Schema.Wrath
		}
	}
	if cfg.Output.Tables != "" {
		tablesDir = filepath.Join(cfg.Output.Tables, string(v))
	}

	return driver.Paths{Version: v, SchemaDir: schemaDir, TablesDir: tablesDir}
}
