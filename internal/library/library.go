package library

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/arcanaland/cardschema/internal/card"
	"github.com/arcanaland/cardschema/internal/validator"
)

// ErrCardNotFound is returned by GetCard when no valid card matches.
var ErrCardNotFound = errors.New("card not found")

// Document is the validation outcome of one card document. Source is the
// file it came from, suffixed with [i] for elements of a bulk array.
type Document struct {
	Source string
	Card   *card.Card
	Err    error
}

func (d Document) Valid() bool {
	return d.Err == nil
}

// Library is a set of card documents loaded from a file or directory
type Library struct {
	Path      string
	Documents []Document

	// Card maps for lookup
	byID   map[string]*card.Card
	byName map[string]*card.Card
}

// LoadLibrary loads and validates every card document under path. Invalid
// documents are kept in Documents; only valid cards can be looked up.
func LoadLibrary(path string, v *validator.Validator) (*Library, error) {
	docs, err := ReadDocuments(path, v)
	if err != nil {
		return nil, err
	}

	lib := &Library{
		Path:      path,
		Documents: docs,
		byID:      make(map[string]*card.Card),
		byName:    make(map[string]*card.Card),
	}
	for _, doc := range docs {
		if doc.Valid() {
			lib.index(doc.Card)
		}
	}

	return lib, nil
}

func (l *Library) index(c *card.Card) {
	l.byID[canonicalID(c.ID)] = c

	// First printing wins for name lookups
	names := []string{c.Name}
	for _, face := range c.CardFaces {
		names = append(names, face.Name)
	}
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := l.byName[key]; !ok {
			l.byName[key] = c
		}
	}
}

// Cards returns the valid cards in load order.
func (l *Library) Cards() []*card.Card {
	var cards []*card.Card
	for _, doc := range l.Documents {
		if doc.Valid() {
			cards = append(cards, doc.Card)
		}
	}
	return cards
}

// Invalid returns the documents that failed validation.
func (l *Library) Invalid() []Document {
	var docs []Document
	for _, doc := range l.Documents {
		if !doc.Valid() {
			docs = append(docs, doc)
		}
	}
	return docs
}

// canonicalID lowercases UUID-shaped IDs so lookups accept any UUID spelling.
func canonicalID(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return id
}

// GetCard gets a card by its Scryfall ID or by card or face name, ignoring case
func (l *Library) GetCard(idOrName string) (*card.Card, error) {
	if c, ok := l.byID[canonicalID(idOrName)]; ok {
		return c, nil
	}
	if c, ok := l.byName[strings.ToLower(idOrName)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCardNotFound, idOrName)
}

// ReadDocuments validates the card documents at path. A file holds either
// one card object or an array of cards; a directory is scanned for .json
// files, not recursively, in name order.
func ReadDocuments(path string, v *validator.Validator) ([]Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if !info.IsDir() {
		return readFile(path, v)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", path, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			slog.Debug("skipping library entry", slog.String("name", entry.Name()))
			continue
		}

		fileDocs, err := readFile(filepath.Join(path, entry.Name()), v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}

	return docs, nil
}

func readFile(path string, v *validator.Validator) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return Parse(path, data, v), nil
}

// Parse validates the card documents in data. Decode failures are reported
// as a single invalid document rather than an error.
func Parse(source string, data []byte, v *validator.Validator) []Document {
	raw, err := validator.Decode(data)
	if err != nil {
		return []Document{{Source: source, Err: err}}
	}

	items, ok := raw.([]any)
	if !ok {
		c, err := v.Validate(raw)
		return []Document{{Source: source, Card: c, Err: err}}
	}

	slog.Debug("validating bulk file", slog.String("source", source), slog.Int("cards", len(items)))
	docs := make([]Document, 0, len(items))
	for i, item := range items {
		c, err := v.Validate(item)
		docs = append(docs, Document{Source: fmt.Sprintf("%s[%d]", source, i), Card: c, Err: err})
	}
	return docs
}
