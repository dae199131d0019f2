package validator_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardschema/internal/card"
	"github.com/arcanaland/cardschema/internal/validator"
)

func imageURIs() map[string]any {
	return map[string]any{
		"png":         "https://cards.scryfall.io/png/front/a/b/ab.png",
		"border_crop": "https://cards.scryfall.io/border_crop/front/a/b/ab.jpg",
		"art_crop":    "https://cards.scryfall.io/art_crop/front/a/b/ab.jpg",
		"large":       "https://cards.scryfall.io/large/front/a/b/ab.jpg",
		"normal":      "https://cards.scryfall.io/normal/front/a/b/ab.jpg",
		"small":       "https://cards.scryfall.io/small/front/a/b/ab.jpg",
	}
}

func face(name string) map[string]any {
	return map[string]any{
		"object":    "card_face",
		"name":      name,
		"mana_cost": "{1}{G}",
		"type_line": "Creature — Human Werewolf",
	}
}

// minimalCard has every required field and no optional ones.
func minimalCard() map[string]any {
	return map[string]any{
		"id":                "0000579f-7b35-4ed3-b44c-db2a538066fe",
		"lang":              "en",
		"object":            "card",
		"layout":            "normal",
		"prints_search_uri": "https://api.scryfall.com/cards/search?q=oracleid",
		"rulings_uri":       "https://api.scryfall.com/cards/0000579f/rulings",
		"scryfall_uri":      "https://scryfall.com/card/tmp/35/fury-sliver",
		"uri":               "https://api.scryfall.com/cards/0000579f",
		"cmc":               6.0,
		"color_identity":    []any{"R"},
		"keywords":          []any{},
		"legalities": map[string]any{
			"standard": "not_legal",
			"legacy":   "legal",
			"vintage":  "restricted",
			"pauper":   "banned",
		},
		"name":             "Fury Sliver",
		"reserved":         false,
		"type_line":        "Creature — Sliver",
		"booster":          true,
		"border_color":     "black",
		"collector_number": "157",
		"digital":          false,
		"finishes":         []any{"nonfoil", "foil"},
		"frame":            "2003",
		"full_art":         false,
		"games":            []any{"paper", "mtgo"},
		"highres_image":    true,
		"image_status":     "highres_scan",
		"oversized":        false,
		"prices": map[string]any{
			"usd":      "0.35",
			"usd_foil": nil,
			"eur":      "0.18",
		},
		"promo":            false,
		"rarity":           "uncommon",
		"related_uris":     map[string]any{"gatherer": "https://gatherer.wizards.com/Pages/Card/Details.aspx?multiverseid=118891"},
		"released_at":      "2006-10-06",
		"reprint":          false,
		"scryfall_set_uri": "https://scryfall.com/sets/tsp",
		"set_name":         "Time Spiral",
		"set_search_uri":   "https://api.scryfall.com/cards/search?order=set&q=e%3Atsp",
		"set_type":         "expansion",
		"set_uri":          "https://api.scryfall.com/sets/c1d109bc",
		"set":              "tsp",
		"set_id":           "c1d109bc-ffd8-428f-8d7d-3f8d7e648046",
		"story_spotlight":  false,
		"textless":         false,
		"variation":        false,
	}
}

var requiredCardFields = []string{
	"id", "lang", "object", "layout", "prints_search_uri", "rulings_uri",
	"scryfall_uri", "uri", "cmc", "color_identity", "keywords", "legalities",
	"name", "reserved", "type_line", "booster", "border_color",
	"collector_number", "digital", "finishes", "frame", "full_art", "games",
	"highres_image", "image_status", "oversized", "prices", "promo", "rarity",
	"related_uris", "released_at", "reprint", "scryfall_set_uri", "set_name",
	"set_search_uri", "set_type", "set_uri", "set", "set_id",
	"story_spotlight", "textless", "variation",
}

func shapeError(t *testing.T, err error) *validator.ShapeError {
	t.Helper()
	require.Error(t, err)
	shapeErr := validator.ExtractShapeError(err)
	require.NotNil(t, shapeErr, "expected a *ShapeError, got %v", err)
	return shapeErr
}

func TestValidate_MinimalCard(t *testing.T) {
	raw := minimalCard()

	c, err := validator.Validate(raw)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, raw["id"], c.ID)
	assert.Equal(t, raw["name"], c.Name)
	assert.Equal(t, 6.0, c.CMC)
	assert.Equal(t, []string{"R"}, c.ColorIdentity)
	assert.NotNil(t, c.Keywords)
	assert.Empty(t, c.Keywords)
	assert.Equal(t, card.RarityUncommon, c.Rarity)
	assert.Equal(t, card.ImageStatusHighresScan, c.ImageStatus)
	assert.Equal(t, card.LegalityRestricted, c.Legalities["vintage"])
	assert.True(t, c.LegalIn("Legacy"))
	assert.False(t, c.LegalIn("standard"))

	usd, ok := c.Price("usd")
	assert.True(t, ok)
	assert.Equal(t, "0.35", usd)
	_, ok = c.Price("usd_foil")
	assert.False(t, ok)

	assert.Nil(t, c.ImageURIs)
	assert.Nil(t, c.CardFaces)
	assert.Nil(t, c.ManaCost)
	assert.Nil(t, c.SecurityStamp)
	assert.Nil(t, c.PurchaseURIs)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	for _, field := range requiredCardFields {
		t.Run(field, func(t *testing.T) {
			raw := minimalCard()
			delete(raw, field)

			_, err := validator.Validate(raw)
			shapeErr := shapeError(t, err)
			require.Len(t, shapeErr.Violations, 1)
			assert.Equal(t, field, shapeErr.Violations[0].Path)
			assert.Equal(t, validator.KindMissingRequiredField, shapeErr.Violations[0].Kind)
		})
	}
}

func TestValidate_EnumValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
	}{
		{name: "rarity", field: "rarity", value: "legendary"},
		{name: "image status", field: "image_status", value: "blurry"},
		{name: "security stamp", field: "security_stamp", value: "square"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalCard()
			raw[tt.field] = tt.value

			_, err := validator.Validate(raw)
			shapeErr := shapeError(t, err)
			require.Len(t, shapeErr.Violations, 1)

			v := shapeErr.Violations[0]
			assert.Equal(t, tt.field, v.Path)
			assert.Equal(t, validator.KindInvalidEnumValue, v.Kind)
			assert.Equal(t, tt.value, v.Actual)
			assert.NotEmpty(t, v.Allowed)
		})
	}

	t.Run("allowed set is reported", func(t *testing.T) {
		raw := minimalCard()
		raw["rarity"] = "legendary"

		_, err := validator.Validate(raw)
		v := shapeError(t, err).Violations[0]
		assert.Equal(t, []string{"common", "uncommon", "rare", "special", "mythic", "bonus"}, v.Allowed)
		assert.Contains(t, v.String(), `rarity: invalid enum value "legendary"`)
	})

	t.Run("every security stamp is accepted", func(t *testing.T) {
		for _, stamp := range card.SecurityStamps {
			raw := minimalCard()
			raw["security_stamp"] = string(stamp)

			c, err := validator.Validate(raw)
			require.NoError(t, err)
			require.NotNil(t, c.SecurityStamp)
			assert.Equal(t, stamp, *c.SecurityStamp)
		}
	})
}

func TestValidate_Legalities(t *testing.T) {
	t.Run("unknown legality state", func(t *testing.T) {
		raw := minimalCard()
		raw["legalities"].(map[string]any)["standard"] = "playable"

		_, err := validator.Validate(raw)
		shapeErr := shapeError(t, err)
		require.Len(t, shapeErr.Violations, 1)
		assert.Equal(t, "legalities.standard", shapeErr.Violations[0].Path)
		assert.Equal(t, validator.KindInvalidEnumValue, shapeErr.Violations[0].Kind)
	})

	t.Run("arbitrary format names", func(t *testing.T) {
		raw := minimalCard()
		raw["legalities"] = map[string]any{"oathbreaker": "legal", "premodern": "not_legal"}

		c, err := validator.Validate(raw)
		require.NoError(t, err)
		assert.Len(t, c.Legalities, 2)
	})

	t.Run("violations follow sorted key order", func(t *testing.T) {
		raw := minimalCard()
		raw["legalities"] = map[string]any{"vintage": 1, "alchemy": "maybe", "modern": "legal"}

		_, err := validator.Validate(raw)
		assert.Equal(t, []string{"legalities.alchemy", "legalities.vintage"}, shapeError(t, err).Paths())
	})

	t.Run("not an object", func(t *testing.T) {
		raw := minimalCard()
		raw["legalities"] = []any{"legal"}

		_, err := validator.Validate(raw)
		v := shapeError(t, err).Violations[0]
		assert.Equal(t, "legalities", v.Path)
		assert.Equal(t, validator.KindWrongType, v.Kind)
	})
}

func TestValidate_Prices(t *testing.T) {
	tests := []struct {
		name    string
		prices  map[string]any
		wantErr string
	}{
		{name: "all null", prices: map[string]any{"usd": nil, "eur": nil}},
		{name: "empty", prices: map[string]any{}},
		{name: "unknown currency", prices: map[string]any{"gbp": "1.00"}},
		{name: "number", prices: map[string]any{"usd": 0.35}, wantErr: "prices.usd"},
		{name: "boolean", prices: map[string]any{"tix": true}, wantErr: "prices.tix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalCard()
			raw["prices"] = tt.prices

			c, err := validator.Validate(raw)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, c.Prices, len(tt.prices))
				return
			}
			shapeErr := shapeError(t, err)
			require.Len(t, shapeErr.Violations, 1)
			assert.Equal(t, tt.wantErr, shapeErr.Violations[0].Path)
			assert.Equal(t, validator.KindWrongType, shapeErr.Violations[0].Kind)
		})
	}
}

func TestValidate_URLs(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		path  string
		kind  validator.Kind
	}{
		{name: "relative uri", field: "uri", value: "/cards/0000579f", path: "uri", kind: validator.KindInvalidURLFormat},
		{name: "no scheme", field: "scryfall_uri", value: "scryfall.com/card", path: "scryfall_uri", kind: validator.KindInvalidURLFormat},
		{name: "empty", field: "set_uri", value: "", path: "set_uri", kind: validator.KindInvalidURLFormat},
		{name: "not a string", field: "rulings_uri", value: 42.0, path: "rulings_uri", kind: validator.KindWrongType},
		{
			name:  "related uri value",
			field: "related_uris",
			value: map[string]any{"edhrec": "not a url"},
			path:  "related_uris.edhrec",
			kind:  validator.KindInvalidURLFormat,
		},
		{
			name:  "purchase uri value",
			field: "purchase_uris",
			value: map[string]any{"tcgplayer": "https://tcgplayer.com/x", "cardmarket": "nope"},
			path:  "purchase_uris.cardmarket",
			kind:  validator.KindInvalidURLFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalCard()
			raw[tt.field] = tt.value

			_, err := validator.Validate(raw)
			shapeErr := shapeError(t, err)
			require.Len(t, shapeErr.Violations, 1)
			assert.Equal(t, tt.path, shapeErr.Violations[0].Path)
			assert.Equal(t, tt.kind, shapeErr.Violations[0].Kind)
		})
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	tests := []struct {
		field    string
		value    any
		path     string
		expected string
	}{
		{field: "name", value: 7.0, path: "name", expected: "string"},
		{field: "cmc", value: "6", path: "cmc", expected: "number"},
		{field: "reserved", value: "false", path: "reserved", expected: "boolean"},
		{field: "games", value: "paper", path: "games", expected: "array of string"},
		{field: "keywords", value: []any{"Flying", 3.0}, path: "keywords[1]", expected: "string"},
		{field: "arena_id", value: 1.5, path: "arena_id", expected: "integer"},
		{field: "arena_id", value: 1e19, path: "arena_id", expected: "integer"},
		{field: "mtgo_id", value: json.Number("1e19"), path: "mtgo_id", expected: "integer"},
		{field: "edhrec_rank", value: -1e19, path: "edhrec_rank", expected: "integer"},
		{field: "multiverse_ids", value: []any{118891.0, "x"}, path: "multiverse_ids[1]", expected: "integer"},
		{field: "mana_cost", value: nil, path: "mana_cost", expected: "string"},
		{field: "card_faces", value: map[string]any{}, path: "card_faces", expected: "array of card_face"},
		{field: "image_uris", value: "https://example.com", path: "image_uris", expected: "object"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			raw := minimalCard()
			raw[tt.field] = tt.value

			_, err := validator.Validate(raw)
			shapeErr := shapeError(t, err)
			require.Len(t, shapeErr.Violations, 1)
			v := shapeErr.Violations[0]
			assert.Equal(t, tt.path, v.Path)
			assert.Equal(t, validator.KindWrongType, v.Kind)
			assert.Equal(t, tt.expected, v.Expected)
		})
	}
}

func TestValidate_WholeNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "float", value: 100.0},
		{name: "int", value: 100},
		{name: "number", value: json.Number("100")},
		{name: "exponent", value: json.Number("1e2")},
		{name: "decimal", value: json.Number("100.0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalCard()
			raw["arena_id"] = tt.value

			c, err := validator.Validate(raw)
			require.NoError(t, err)
			require.NotNil(t, c.ArenaID)
			assert.Equal(t, 100, *c.ArenaID)
		})
	}
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	raw := minimalCard()
	delete(raw, "name")
	raw["rarity"] = "legendary"
	raw["cmc"] = "six"
	raw["legalities"].(map[string]any)["standard"] = "playable"

	_, err := validator.Validate(raw)
	shapeErr := shapeError(t, err)

	assert.Equal(t, []string{"cmc", "legalities.standard", "name", "rarity"}, shapeErr.Paths())
	assert.True(t, errors.Is(err, validator.ErrInvalidShape))
	assert.True(t, shapeErr.Has("rarity"))
	assert.Len(t, shapeErr.Get("name"), 1)
}

func TestValidate_CardFaces(t *testing.T) {
	t.Run("second face missing name", func(t *testing.T) {
		raw := minimalCard()
		second := face("Ulvenwald Primordials")
		delete(second, "name")
		raw["card_faces"] = []any{face("Ulvenwald Mystics"), second}

		_, err := validator.Validate(raw)
		shapeErr := shapeError(t, err)
		require.Len(t, shapeErr.Violations, 1)
		assert.Equal(t, "card_faces[1].name", shapeErr.Violations[0].Path)
		assert.Equal(t, validator.KindMissingRequiredField, shapeErr.Violations[0].Kind)
	})

	t.Run("nested image uris", func(t *testing.T) {
		raw := minimalCard()
		f := face("Front")
		images := imageURIs()
		images["small"] = "small.jpg"
		delete(images, "png")
		f["image_uris"] = images
		raw["card_faces"] = []any{face("Back"), f}

		_, err := validator.Validate(raw)
		shapeErr := shapeError(t, err)
		assert.Equal(t, []string{"card_faces[1].image_uris.png", "card_faces[1].image_uris.small"}, shapeErr.Paths())

		grouped := shapeErr.Grouped()
		require.Len(t, grouped, 1)
		assert.Equal(t, validator.KindInvalidNestedShape, grouped[0].Kind)
		assert.Equal(t, "card_faces[1]", grouped[0].Path)
		require.Len(t, grouped[0].Nested, 1)
		assert.Equal(t, "image_uris", grouped[0].Nested[0].Path)
		assert.Len(t, grouped[0].Nested[0].Nested, 2)
	})

	t.Run("face that is not an object", func(t *testing.T) {
		raw := minimalCard()
		raw["card_faces"] = []any{face("Front"), "Back"}

		_, err := validator.Validate(raw)
		v := shapeError(t, err).Violations[0]
		assert.Equal(t, "card_faces[1]", v.Path)
		assert.Equal(t, validator.KindWrongType, v.Kind)
	})
}

func TestValidate_ImageSources(t *testing.T) {
	t.Run("top level only", func(t *testing.T) {
		raw := minimalCard()
		raw["image_uris"] = imageURIs()

		c, err := validator.Validate(raw)
		require.NoError(t, err)
		require.NotNil(t, c.ImageURIs)
		assert.Equal(t, c.ImageURIs, c.ImageURIsFor(0))
		assert.False(t, c.IsMultiFaced())
	})

	t.Run("faces only", func(t *testing.T) {
		raw := minimalCard()
		front, back := face("Delver of Secrets"), face("Insectile Aberration")
		front["image_uris"] = imageURIs()
		back["image_uris"] = imageURIs()
		raw["card_faces"] = []any{front, back}

		c, err := validator.Validate(raw)
		require.NoError(t, err)
		assert.Nil(t, c.ImageURIs)
		assert.True(t, c.IsMultiFaced())
		require.NotNil(t, c.ImageURIsFor(1))
		assert.Equal(t, imageURIs()["png"], c.ImageURIsFor(1).PNG)
	})
}

func TestValidate_AllParts(t *testing.T) {
	part := func(component string) map[string]any {
		return map[string]any{
			"object":    "related_card",
			"id":        "bc71ebf6-2056-41f7-be35-b2e5c34afa99",
			"component": component,
			"name":      "Brisela, Voice of Nightmares",
			"type_line": "Legendary Creature — Eldrazi Angel",
			"uri":       "https://api.scryfall.com/cards/bc71ebf6",
		}
	}

	raw := minimalCard()
	raw["all_parts"] = []any{part("meld_part"), part("meld_result")}
	c, err := validator.Validate(raw)
	require.NoError(t, err)
	require.Len(t, c.AllParts, 2)
	assert.Equal(t, card.ComponentMeldResult, c.AllParts[1].Component)

	raw["all_parts"] = []any{part("meld_part"), part("sidekick")}
	_, err = validator.Validate(raw)
	v := shapeError(t, err).Violations[0]
	assert.Equal(t, "all_parts[1].component", v.Path)
	assert.Equal(t, validator.KindInvalidEnumValue, v.Kind)
}

func TestValidate_Preview(t *testing.T) {
	raw := minimalCard()
	raw["preview"] = map[string]any{}
	c, err := validator.Validate(raw)
	require.NoError(t, err)
	require.NotNil(t, c.Preview)
	assert.Nil(t, c.Preview.Source)

	raw["preview"] = map[string]any{"source": "Wizards", "source_uri": "not-a-url", "previewed_at": "2006-09-01"}
	_, err = validator.Validate(raw)
	v := shapeError(t, err).Violations[0]
	assert.Equal(t, "preview.source_uri", v.Path)
	assert.Equal(t, validator.KindInvalidURLFormat, v.Kind)
}

func TestValidate_NotAnObject(t *testing.T) {
	for _, raw := range []any{nil, "card", 1.0, []any{}} {
		_, err := validator.Validate(raw)
		shapeErr := shapeError(t, err)
		require.Len(t, shapeErr.Violations, 1)
		assert.Equal(t, "", shapeErr.Violations[0].Path)
		assert.Equal(t, validator.KindWrongType, shapeErr.Violations[0].Kind)
	}
}

func TestValidate_RoundTrip(t *testing.T) {
	raw := minimalCard()
	raw["image_uris"] = imageURIs()
	raw["mana_cost"] = "{5}{R}"
	raw["arena_id"] = 12345.0
	raw["security_stamp"] = "oval"
	raw["preview"] = map[string]any{"source": "Wizards"}

	first, err := validator.Validate(raw)
	require.NoError(t, err)

	data, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := validator.NewValidator(validator.Options{DisallowUnknownFields: true}).ValidateJSON(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidator_DisallowUnknownFields(t *testing.T) {
	v := validator.NewValidator(validator.Options{DisallowUnknownFields: true})

	raw := minimalCard()
	raw["zeta"] = 1.0
	raw["alpha"] = "x"
	raw["image_uris"] = imageURIs()
	raw["image_uris"].(map[string]any)["huge"] = "https://example.com/huge.jpg"

	_, err := v.Validate(raw)
	shapeErr := shapeError(t, err)
	assert.Equal(t, []string{"image_uris.huge", "alpha", "zeta"}, shapeErr.Paths())
	for _, violation := range shapeErr.Violations {
		assert.Equal(t, validator.KindUnexpectedField, violation.Kind)
	}

	_, err = validator.Validate(raw)
	assert.NoError(t, err, "unknown fields are ignored by default")
}

func TestValidator_RequireSingleImageSource(t *testing.T) {
	v := validator.NewValidator(validator.Options{RequireSingleImageSource: true})

	withFaces := func(top bool, faceImages ...bool) map[string]any {
		raw := minimalCard()
		if top {
			raw["image_uris"] = imageURIs()
		}
		var faces []any
		for i, has := range faceImages {
			f := face(string(rune('A' + i)))
			if has {
				f["image_uris"] = imageURIs()
			}
			faces = append(faces, f)
		}
		if faces != nil {
			raw["card_faces"] = faces
		}
		return raw
	}

	tests := []struct {
		name    string
		raw     map[string]any
		wantErr bool
	}{
		{name: "single faced with images", raw: withFaces(true)},
		{name: "faces carry images", raw: withFaces(false, true, true)},
		{name: "split card shares top images", raw: withFaces(true, false, false)},
		{name: "both", raw: withFaces(true, true, true), wantErr: true},
		{name: "neither", raw: withFaces(false), wantErr: true},
		{name: "one face lacks images", raw: withFaces(false, true, false), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Validate(tt.raw)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			shapeErr := shapeError(t, err)
			require.Len(t, shapeErr.Violations, 1)
			assert.Equal(t, "image_uris", shapeErr.Violations[0].Path)
			assert.Equal(t, validator.KindAmbiguousImageSource, shapeErr.Violations[0].Kind)
		})
	}
}

func TestValidator_ValidateList(t *testing.T) {
	v := validator.NewValidator(validator.Options{})

	cards, err := v.ValidateList([]any{minimalCard(), minimalCard()})
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	broken := minimalCard()
	delete(broken, "set")
	_, err = v.ValidateList([]any{minimalCard(), broken})
	assert.Equal(t, []string{"[1].set"}, shapeError(t, err).Paths())

	_, err = v.ValidateList(minimalCard())
	assert.Equal(t, []string{""}, shapeError(t, err).Paths())
}

func TestValidateJSON(t *testing.T) {
	v := validator.NewValidator(validator.Options{})

	data, err := json.Marshal(minimalCard())
	require.NoError(t, err)

	c, err := v.ValidateJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "Fury Sliver", c.Name)

	_, err = v.ValidateJSON([]byte(`{"id":`))
	assert.ErrorIs(t, err, validator.ErrInvalidJSON)
	assert.Nil(t, validator.ExtractShapeError(err))

	for _, trailing := range []string{" {}", "}", "]", " x"} {
		_, err = v.ValidateJSON(append(data[:len(data):len(data)], trailing...))
		assert.ErrorIs(t, err, validator.ErrInvalidJSON, "trailing %q", trailing)
	}

	_, err = v.ValidateJSON(append(data[:len(data):len(data)], "\n"...))
	assert.NoError(t, err, "trailing whitespace is allowed")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	doc["arena_id"] = json.RawMessage("1e2")
	data, err = json.Marshal(doc)
	require.NoError(t, err)

	c, err = v.ValidateJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 100, *c.ArenaID)

	doc["arena_id"] = json.RawMessage("1e19")
	data, err = json.Marshal(doc)
	require.NoError(t, err)

	_, err = v.ValidateJSON(data)
	assert.True(t, shapeError(t, err).Has("arena_id"))
}

func TestShapeError_JSON(t *testing.T) {
	raw := minimalCard()
	raw["rarity"] = "legendary"

	_, err := validator.Validate(raw)
	data, mErr := json.Marshal(shapeError(t, err))
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"violations":[{
		"path":"rarity",
		"kind":"invalid_enum_value",
		"expected":"enum",
		"actual":"legendary",
		"allowed":["common","uncommon","rare","special","mythic","bonus"]
	}]}`, string(data))
}
