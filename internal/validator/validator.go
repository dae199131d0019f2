package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/arcanaland/cardschema/internal/card"
)

// Options tighten validation beyond the card shape itself.
type Options struct {
	// DisallowUnknownFields reports keys no fragment declares.
	DisallowUnknownFields bool

	// RequireSingleImageSource requires images either on the card or on
	// every face, but not both.
	RequireSingleImageSource bool
}

// Validator checks decoded JSON documents against the card shape. It holds
// no state beyond its options and is safe for concurrent use.
type Validator struct {
	opts Options
}

func NewValidator(opts Options) *Validator {
	return &Validator{opts: opts}
}

var defaultValidator = NewValidator(Options{})

// Validate checks raw against the card shape using default options.
func Validate(raw any) (*card.Card, error) {
	return defaultValidator.Validate(raw)
}

// ValidateImageURIs checks raw against the image_uris shape.
func ValidateImageURIs(raw any) (card.ImageURIs, error) {
	return validateRoot(raw, Options{}, readImageURIs)
}

// ValidateRelatedCard checks raw against the related card shape.
func ValidateRelatedCard(raw any) (card.RelatedCard, error) {
	return validateRoot(raw, Options{}, readRelatedCard)
}

// ValidateCardFace checks raw against the card face shape.
func ValidateCardFace(raw any) (card.CardFace, error) {
	return validateRoot(raw, Options{}, readCardFace)
}

// Validate returns the typed card, or a *ShapeError listing every violation.
func (v *Validator) Validate(raw any) (*card.Card, error) {
	c, err := validateRoot(raw, v.opts, readCard)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidateList validates an array of cards, as found in bulk data files.
// Violation paths are prefixed with the element index.
func (v *Validator) ValidateList(raw any) ([]*card.Card, error) {
	col := &collector{}
	f := newFields(nil, col, v.opts)
	cards := elements(f, "", raw, "array of card", func(path string, item any) (card.Card, bool) {
		return object(f, path, item, shapeCard, readCard)
	})
	if err := col.err(); err != nil {
		return nil, err
	}

	out := make([]*card.Card, len(cards))
	for i := range cards {
		out[i] = &cards[i]
	}
	return out, nil
}

// ValidateJSON decodes data and validates it as a single card.
func (v *Validator) ValidateJSON(data []byte) (*card.Card, error) {
	raw, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return v.Validate(raw)
}

// Decode parses a JSON document into the generic form the validator expects.
// Numbers are kept as json.Number so large identifiers stay exact.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidJSON)
	}
	return raw, nil
}

func validateRoot[T any](raw any, opts Options, read func(*fields) T) (T, error) {
	var zero T
	col := &collector{}
	m, ok := raw.(map[string]any)
	if !ok {
		col.wrongType("", "object", raw)
		return zero, col.err()
	}

	f := newFields(m, col, opts)
	t := read(f)
	f.finish()
	if err := col.err(); err != nil {
		return zero, err
	}
	return t, nil
}
