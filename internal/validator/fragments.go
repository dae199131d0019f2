package validator

import "github.com/arcanaland/cardschema/internal/card"

const (
	shapeImageURIs   = "image_uris"
	shapeRelatedCard = "related_card"
	shapeCardFace    = "card_face"
	shapePreview     = "preview"
	shapeCard        = "card"
)

func readImageURIs(f *fields) card.ImageURIs {
	return card.ImageURIs{
		PNG:        f.url("png"),
		BorderCrop: f.url("border_crop"),
		ArtCrop:    f.url("art_crop"),
		Large:      f.url("large"),
		Normal:     f.url("normal"),
		Small:      f.url("small"),
	}
}

func readRelatedCard(f *fields) card.RelatedCard {
	return card.RelatedCard{
		ID:        f.str("id"),
		Object:    f.str("object"),
		Component: enumValue(f, "component", card.Components),
		Name:      f.str("name"),
		TypeLine:  f.str("type_line"),
		URI:       f.url("uri"),
	}
}

func readCardFace(f *fields) card.CardFace {
	return card.CardFace{
		Artist:          f.optStr("artist"),
		ArtistID:        f.optStr("artist_id"),
		CMC:             f.optNum("cmc"),
		ColorIndicator:  f.optStrs("color_indicator"),
		Colors:          f.optStrs("colors"),
		Defense:         f.optStr("defense"),
		FlavorName:      f.optStr("flavor_name"),
		FlavorText:      f.optStr("flavor_text"),
		IllustrationID:  f.optStr("illustration_id"),
		ImageURIs:       optObject(f, "image_uris", shapeImageURIs, readImageURIs),
		Layout:          f.optStr("layout"),
		Loyalty:         f.optStr("loyalty"),
		ManaCost:        f.optStr("mana_cost"),
		Name:            f.str("name"),
		Object:          f.str("object"),
		OracleID:        f.optStr("oracle_id"),
		OracleText:      f.optStr("oracle_text"),
		Power:           f.optStr("power"),
		PrintedName:     f.optStr("printed_name"),
		PrintedText:     f.optStr("printed_text"),
		PrintedTypeLine: f.optStr("printed_type_line"),
		Toughness:       f.optStr("toughness"),
		TypeLine:        f.optStr("type_line"),
		Watermark:       f.optStr("watermark"),
	}
}

func readPreview(f *fields) card.Preview {
	return card.Preview{
		PreviewedAt: f.optStr("previewed_at"),
		SourceURI:   f.optURL("source_uri"),
		Source:      f.optStr("source"),
	}
}

// readPrice accepts a price string or null; both absent and null mean no price.
func (f *fields) readPrice(path string, v any) (*string, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		f.c.wrongType(path, "string or null", v)
		return nil, false
	}
	return &s, true
}

func (f *fields) readLegality(path string, v any) (card.Legality, bool) {
	return asEnum(f, path, v, card.Legalities)
}

// readCard reads fields in the order Scryfall documents them, which is also
// the order violations are reported in.
func readCard(f *fields) card.Card {
	c := card.Card{
		ArenaID:           f.optInt("arena_id"),
		ID:                f.str("id"),
		Lang:              f.str("lang"),
		MtgoID:            f.optInt("mtgo_id"),
		MtgoFoilID:        f.optInt("mtgo_foil_id"),
		MultiverseIDs:     f.optInts("multiverse_ids"),
		TcgplayerID:       f.optInt("tcgplayer_id"),
		TcgplayerEtchedID: f.optInt("tcgplayer_etched_id"),
		CardmarketID:      f.optInt("cardmarket_id"),
		Object:            f.str("object"),
		Layout:            f.str("layout"),
		OracleID:          f.optStr("oracle_id"),
		PrintsSearchURI:   f.url("prints_search_uri"),
		RulingsURI:        f.url("rulings_uri"),
		ScryfallURI:       f.url("scryfall_uri"),
		URI:               f.url("uri"),
	}

	c.AllParts = optObjects(f, "all_parts", shapeRelatedCard, readRelatedCard)
	c.CardFaces = optObjects(f, "card_faces", shapeCardFace, readCardFace)
	c.CMC = f.num("cmc")
	c.ColorIdentity = f.strs("color_identity")
	c.ColorIndicator = f.optStrs("color_indicator")
	c.Colors = f.optStrs("colors")
	c.Defense = f.optStr("defense")
	c.EdhrecRank = f.optInt("edhrec_rank")
	c.GameChanger = f.optBool("game_changer")
	c.HandModifier = f.optStr("hand_modifier")
	c.Keywords = f.strs("keywords")
	c.Legalities = mapping(f, "legalities", true, f.readLegality)
	c.LifeModifier = f.optStr("life_modifier")
	c.Loyalty = f.optStr("loyalty")
	c.ManaCost = f.optStr("mana_cost")
	c.Name = f.str("name")
	c.OracleText = f.optStr("oracle_text")
	c.PennyRank = f.optInt("penny_rank")
	c.Power = f.optStr("power")
	c.ProducedMana = f.optStrs("produced_mana")
	c.Reserved = f.boolean("reserved")
	c.Toughness = f.optStr("toughness")
	c.TypeLine = f.str("type_line")

	c.Artist = f.optStr("artist")
	c.ArtistIDs = f.optStrs("artist_ids")
	c.AttractionLights = f.optInts("attraction_lights")
	c.Booster = f.boolean("booster")
	c.BorderColor = f.str("border_color")
	c.CardBackID = f.optStr("card_back_id")
	c.CollectorNumber = f.str("collector_number")
	c.ContentWarning = f.optBool("content_warning")
	c.Digital = f.boolean("digital")
	c.Finishes = f.strs("finishes")
	c.FlavorName = f.optStr("flavor_name")
	c.FlavorText = f.optStr("flavor_text")
	c.FrameEffects = f.optStrs("frame_effects")
	c.Frame = f.str("frame")
	c.FullArt = f.boolean("full_art")
	c.Games = f.strs("games")
	c.HighresImage = f.boolean("highres_image")
	c.IllustrationID = f.optStr("illustration_id")
	c.ImageStatus = enumValue(f, "image_status", card.ImageStatuses)
	c.ImageURIs = optObject(f, "image_uris", shapeImageURIs, readImageURIs)
	c.Oversized = f.boolean("oversized")
	c.Prices = mapping(f, "prices", true, f.readPrice)
	c.PrintedName = f.optStr("printed_name")
	c.PrintedText = f.optStr("printed_text")
	c.PrintedTypeLine = f.optStr("printed_type_line")
	c.Promo = f.boolean("promo")
	c.PromoTypes = f.optStrs("promo_types")
	c.PurchaseURIs = mapping(f, "purchase_uris", false, f.asURL)
	c.Rarity = enumValue(f, "rarity", card.Rarities)
	c.RelatedURIs = mapping(f, "related_uris", true, f.asURL)
	c.ReleasedAt = f.str("released_at")
	c.Reprint = f.boolean("reprint")
	c.ScryfallSetURI = f.url("scryfall_set_uri")
	c.SetName = f.str("set_name")
	c.SetSearchURI = f.url("set_search_uri")
	c.SetType = f.str("set_type")
	c.SetURI = f.url("set_uri")
	c.Set = f.str("set")
	c.SetID = f.str("set_id")
	c.StorySpotlight = f.boolean("story_spotlight")
	c.Textless = f.boolean("textless")
	c.Variation = f.boolean("variation")
	c.VariationOf = f.optStr("variation_of")
	c.SecurityStamp = optEnum(f, "security_stamp", card.SecurityStamps)
	c.Watermark = f.optStr("watermark")
	c.Preview = optObject(f, "preview", shapePreview, readPreview)

	if f.opts.RequireSingleImageSource {
		f.checkImageSource()
	}
	return c
}

// checkImageSource enforces that a card carries its images either at the top
// level or on every face, never both and never neither. It inspects the raw
// document so that unrelated face violations do not cascade into it.
func (f *fields) checkImageSource() {
	_, top := f.m["image_uris"]

	faces, _ := toSlice(f.m["card_faces"])
	withImages := 0
	for _, face := range faces {
		if m, ok := face.(map[string]any); ok {
			if _, ok := m["image_uris"]; ok {
				withImages++
			}
		}
	}

	switch {
	case top && withImages > 0:
		f.c.add(Violation{
			Path:     "image_uris",
			Kind:     KindAmbiguousImageSource,
			Expected: "image_uris must not be set both on the card and on its faces",
		})
	case !top && (len(faces) == 0 || withImages < len(faces)):
		f.c.add(Violation{
			Path:     "image_uris",
			Kind:     KindAmbiguousImageSource,
			Expected: "image_uris must be set on the card or on every face",
		})
	}
}
