// Package driver wires the schema parser, validator, and generator
// together: for each version it discovers the version's XML schema
// files, parses and validates them into a catalog, and writes the
// generated Go sources (per-table files, the per-version aggregator, and
// the SQLite export companions) to disk.
package driver

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"

	"dbcgen/internal/generator"
	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
	"dbcgen/internal/xmlschema"
)

// Paths configures where a version's schema XML lives and where its
// generated Go sources should be written.
type Paths struct {
	Version    schema.Version
	SchemaDir  string
	TablesDir  string
}

// Result summarizes one version's generation run.
type Result struct {
	Version     schema.Version
	TableCount  int
	FilesWritten []string
}

// Run discovers, parses, validates, and generates every table for one
// version.
func Run(p Paths, enums schema.EnumCatalog) (Result, error) {
	files, err := discoverSchemaFiles(p.SchemaDir)
	if err != nil {
		return Result{}, err
	}

	objects := schema.NewObjects(p.Version)
	parser := xmlschema.NewParser(p.Version)

	for _, f := range files {
		t, err := parser.ParseFile(f)
		if err != nil {
			return Result{}, err
		}
		if err := objects.PushDescription(t); err != nil {
			return Result{}, err
		}
	}

	if err := objects.Validate(enums); err != nil {
		return Result{}, err
	}

	descriptions := objects.Descriptions()

	if err := os.MkdirAll(p.TablesDir, 0o755); err != nil {
		return Result{}, errors.Wrapf(err, "driver: create output directory %q", p.TablesDir)
	}

	var written []string
	for _, t := range descriptions {
		fileName, source, err := generator.GenerateTable(t, objects)
		if err != nil {
			return Result{}, err
		}
		path := filepath.Join(p.TablesDir, fileName)
		if err := writeIfChanged(path, source); err != nil {
			return Result{}, err
		}
		written = append(written, path)

		sqlFileName, sqlSource := generator.GenerateSQLiteExport(t, objects)
		sqlPath := filepath.Join(p.TablesDir, sqlFileName)
		if err := writeIfChanged(sqlPath, sqlSource); err != nil {
			return Result{}, err
		}
		written = append(written, sqlPath)
	}

	modFileName, modSource := generator.GenerateAggregator(p.Version, descriptions)
	modPath := filepath.Join(p.TablesDir, modFileName)
	if err := writeIfChanged(modPath, modSource); err != nil {
		return Result{}, err
	}
	written = append(written, modPath)

	return Result{Version: p.Version, TableCount: len(descriptions), FilesWritten: written}, nil
}

// discoverSchemaFiles lists every .xml file directly under dir, sorted by
// name so generation order (and therefore any diagnostics that cite it)
// is deterministic regardless of the underlying filesystem's directory
// entry order.
func discoverSchemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "driver: read schema directory %q", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".xml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	files := make([]string, len(names))
	for i, n := range names {
		files[i] = filepath.Join(dir, n)
	}
	return files, nil
}

// writeIfChanged writes contents to path only if the file doesn't already
// hold them, so repeated generator runs don't touch file mtimes (and
// don't dirty a working tree) when nothing actually changed. The
// generator's idempotent-output guarantee is otherwise out of scope: this
// is a plain byte comparison, not a semantic diff.
func writeIfChanged(path, contents string) error {
	existing, err := os.ReadFile(path)
	if err == nil && string(existing) == contents {
		return nil
	}
	if err := os.WriteFile(path, []byte(contents), writer.GeneratedFileMode); err != nil {
		return errors.Wrapf(err, "driver: write %q", path)
	}
	return nil
}
