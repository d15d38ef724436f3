package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// sourceFiles maps each source to its mercuriale document.
var sourceFiles = map[Source]string{
	SourceFolkestone: "mercuriale-folkestone.json",
	SourceVendome:    "mercuriale-vendome.json",
	SourceWashington: "mercuriale-washington.json",
	SourceLeHavre:    "mercuriale-lehavre.json",
}

// LoadDir reads the four source documents concurrently and returns a
// populated store. Initialization is all or nothing: one unreadable or
// malformed document fails the whole load and no partial catalog state
// is returned.
func LoadDir(ctx context.Context, dir string) (*Store, error) {
	type loaded struct {
		records []Record
		raw     []byte
	}
	results := make([]loaded, len(SourceOrder))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range SourceOrder {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, sourceFiles[src])
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("lecture %s: %w", sourceFiles[src], err)
			}
			var records []Record
			if err := json.Unmarshal(data, &records); err != nil {
				return fmt.Errorf("décodage %s: %w", sourceFiles[src], err)
			}
			results[i] = loaded{records: records, raw: data}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("chargement des mercuriales: %w", err)
	}

	headers, err := firstObjectKeys(results[0].raw)
	if err != nil {
		return nil, fmt.Errorf("en-têtes de %s: %w", sourceFiles[SourceOrder[0]], err)
	}

	sources := make(map[Source][]Record, len(SourceOrder))
	for i, src := range SourceOrder {
		sources[src] = results[i].records
	}
	store := NewStore()
	store.Load(sources, headers)
	return store, nil
}

// firstObjectKeys returns the keys of the first object of a JSON array
// in document order. Decoded maps cannot be used for this: they drop
// the order the presentation layer displays columns in. An empty array
// yields no keys and no error.
func firstObjectKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	// opening '['
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("expected array, got %v", tok)
	}
	if !dec.More() {
		return nil, nil
	}
	// opening '{' of the first element
	tok, err = dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	var keys []string
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}
		keys = append(keys, key)
		// skip the value, whatever its shape
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	}
	return keys, nil
}
