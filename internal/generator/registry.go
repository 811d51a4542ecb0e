// Package generator is the printer: it turns a resolved schema.Table into
// Go source implementing that table's row type, key type, and binary
// read/write routines, plus the per-version aggregator that dispatches
// across every table of a release.
package generator

import (
	"fmt"
	"sync"

	"dbcgen/internal/schema"
	"dbcgen/internal/writer"
)

// emitter knows how to render one field kind: its Go type, how to decode
// it from a Cursor, and how to encode it back to bytes.
type emitter interface {
	GoType(ctx *context, ft schema.FieldType) string
	Read(s *writer.Sink, ctx *context, dst string, ft schema.FieldType)
	Write(s *writer.Sink, ctx *context, src string, ft schema.FieldType)
}

var (
	registryMu sync.RWMutex
	registry   = map[schema.Kind]emitter{}
)

// registerEmitter installs the emitter for a field kind. Called from
// init() in the file that defines each emitter.
func registerEmitter(k schema.Kind, e emitter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[k] = e
}

func emitterFor(k schema.Kind) (emitter, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("generator: no emitter registered for field kind %q", k)
	}
	return e, nil
}

// context carries the per-table state emitters need: which version's
// LocalizedString width applies, and the catalog for resolving key types.
type context struct {
	version schema.Version
	objects *schema.Objects
}
