package card

import "strings"

// Card represents a single printing of a card as served by the Scryfall API.
// Optional fields are pointers or nil slices/maps so that absence survives
// a decode/encode round trip.
type Card struct {
	// Core fields
	ArenaID           *int    `json:"arena_id,omitempty"`
	ID                string  `json:"id"`
	Lang              string  `json:"lang"`
	MtgoID            *int    `json:"mtgo_id,omitempty"`
	MtgoFoilID        *int    `json:"mtgo_foil_id,omitempty"`
	MultiverseIDs     []int   `json:"multiverse_ids,omitempty"`
	TcgplayerID       *int    `json:"tcgplayer_id,omitempty"`
	TcgplayerEtchedID *int    `json:"tcgplayer_etched_id,omitempty"`
	CardmarketID      *int    `json:"cardmarket_id,omitempty"`
	Object            string  `json:"object"`
	Layout            string  `json:"layout"`
	OracleID          *string `json:"oracle_id,omitempty"`
	PrintsSearchURI   string  `json:"prints_search_uri"`
	RulingsURI        string  `json:"rulings_uri"`
	ScryfallURI       string  `json:"scryfall_uri"`
	URI               string  `json:"uri"`

	// Gameplay
	AllParts       []RelatedCard       `json:"all_parts,omitempty"`
	CardFaces      []CardFace          `json:"card_faces,omitempty"`
	CMC            float64             `json:"cmc"`
	ColorIdentity  []string            `json:"color_identity"`
	ColorIndicator []string            `json:"color_indicator,omitempty"`
	Colors         []string            `json:"colors,omitempty"`
	Defense        *string             `json:"defense,omitempty"`
	EdhrecRank     *int                `json:"edhrec_rank,omitempty"`
	GameChanger    *bool               `json:"game_changer,omitempty"`
	HandModifier   *string             `json:"hand_modifier,omitempty"`
	Keywords       []string            `json:"keywords"`
	Legalities     map[string]Legality `json:"legalities"`
	LifeModifier   *string             `json:"life_modifier,omitempty"`
	Loyalty        *string             `json:"loyalty,omitempty"`
	ManaCost       *string             `json:"mana_cost,omitempty"`
	Name           string              `json:"name"`
	OracleText     *string             `json:"oracle_text,omitempty"`
	PennyRank      *int                `json:"penny_rank,omitempty"`
	Power          *string             `json:"power,omitempty"`
	ProducedMana   []string            `json:"produced_mana,omitempty"`
	Reserved       bool                `json:"reserved"`
	Toughness      *string             `json:"toughness,omitempty"`
	TypeLine       string              `json:"type_line"`

	// Print
	Artist           *string            `json:"artist,omitempty"`
	ArtistIDs        []string           `json:"artist_ids,omitempty"`
	AttractionLights []int              `json:"attraction_lights,omitempty"`
	Booster          bool               `json:"booster"`
	BorderColor      string             `json:"border_color"`
	CardBackID       *string            `json:"card_back_id,omitempty"`
	CollectorNumber  string             `json:"collector_number"`
	ContentWarning   *bool              `json:"content_warning,omitempty"`
	Digital          bool               `json:"digital"`
	Finishes         []string           `json:"finishes"`
	FlavorName       *string            `json:"flavor_name,omitempty"`
	FlavorText       *string            `json:"flavor_text,omitempty"`
	FrameEffects     []string           `json:"frame_effects,omitempty"`
	Frame            string             `json:"frame"`
	FullArt          bool               `json:"full_art"`
	Games            []string           `json:"games"`
	HighresImage     bool               `json:"highres_image"`
	IllustrationID   *string            `json:"illustration_id,omitempty"`
	ImageStatus      ImageStatus        `json:"image_status"`
	ImageURIs        *ImageURIs         `json:"image_uris,omitempty"`
	Oversized        bool               `json:"oversized"`
	Prices           map[string]*string `json:"prices"`
	PrintedName      *string            `json:"printed_name,omitempty"`
	PrintedText      *string            `json:"printed_text,omitempty"`
	PrintedTypeLine  *string            `json:"printed_type_line,omitempty"`
	Promo            bool               `json:"promo"`
	PromoTypes       []string           `json:"promo_types,omitempty"`
	PurchaseURIs     map[string]string  `json:"purchase_uris,omitempty"`
	Rarity           Rarity             `json:"rarity"`
	RelatedURIs      map[string]string  `json:"related_uris"`
	ReleasedAt       string             `json:"released_at"`
	Reprint          bool               `json:"reprint"`
	ScryfallSetURI   string             `json:"scryfall_set_uri"`
	SetName          string             `json:"set_name"`
	SetSearchURI     string             `json:"set_search_uri"`
	SetType          string             `json:"set_type"`
	SetURI           string             `json:"set_uri"`
	Set              string             `json:"set"`
	SetID            string             `json:"set_id"`
	StorySpotlight   bool               `json:"story_spotlight"`
	Textless         bool               `json:"textless"`
	Variation        bool               `json:"variation"`
	VariationOf      *string            `json:"variation_of,omitempty"`
	SecurityStamp    *SecurityStamp     `json:"security_stamp,omitempty"`
	Watermark        *string            `json:"watermark,omitempty"`
	Preview          *Preview           `json:"preview,omitempty"`
}

// CardFace is one printed face of a multi-faced card.
type CardFace struct {
	Artist          *string    `json:"artist,omitempty"`
	ArtistID        *string    `json:"artist_id,omitempty"`
	CMC             *float64   `json:"cmc,omitempty"`
	ColorIndicator  []string   `json:"color_indicator,omitempty"`
	Colors          []string   `json:"colors,omitempty"`
	Defense         *string    `json:"defense,omitempty"`
	FlavorName      *string    `json:"flavor_name,omitempty"`
	FlavorText      *string    `json:"flavor_text,omitempty"`
	IllustrationID  *string    `json:"illustration_id,omitempty"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	Layout          *string    `json:"layout,omitempty"`
	Loyalty         *string    `json:"loyalty,omitempty"`
	ManaCost        *string    `json:"mana_cost,omitempty"`
	Name            string     `json:"name"`
	Object          string     `json:"object"`
	OracleID        *string    `json:"oracle_id,omitempty"`
	OracleText      *string    `json:"oracle_text,omitempty"`
	Power           *string    `json:"power,omitempty"`
	PrintedName     *string    `json:"printed_name,omitempty"`
	PrintedText     *string    `json:"printed_text,omitempty"`
	PrintedTypeLine *string    `json:"printed_type_line,omitempty"`
	Toughness       *string    `json:"toughness,omitempty"`
	TypeLine        *string    `json:"type_line,omitempty"`
	Watermark       *string    `json:"watermark,omitempty"`
}

// RelatedCard references another card this one interacts with.
type RelatedCard struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"`
	Component Component `json:"component"`
	Name      string    `json:"name"`
	TypeLine  string    `json:"type_line"`
	URI       string    `json:"uri"`
}

// ImageURIs holds the rendered image variants of a card or face.
type ImageURIs struct {
	PNG        string `json:"png"`
	BorderCrop string `json:"border_crop"`
	ArtCrop    string `json:"art_crop"`
	Large      string `json:"large"`
	Normal     string `json:"normal"`
	Small      string `json:"small"`
}

// Preview describes where a card was first previewed.
type Preview struct {
	PreviewedAt *string `json:"previewed_at,omitempty"`
	SourceURI   *string `json:"source_uri,omitempty"`
	Source      *string `json:"source,omitempty"`
}

// IsMultiFaced reports whether the card carries more than one face.
func (c *Card) IsMultiFaced() bool {
	return len(c.CardFaces) > 1
}

// ImageURIsFor returns the images for the given face index. Single-faced
// cards and cards whose faces share one image fall back to the top-level set.
func (c *Card) ImageURIsFor(face int) *ImageURIs {
	if face >= 0 && face < len(c.CardFaces) && c.CardFaces[face].ImageURIs != nil {
		return c.CardFaces[face].ImageURIs
	}
	return c.ImageURIs
}

// LegalIn reports whether the card may be played in format.
func (c *Card) LegalIn(format string) bool {
	return c.Legalities[strings.ToLower(format)] == LegalityLegal
}

// Price returns the price for currency (usd, usd_foil, eur, tix, ...).
func (c *Card) Price(currency string) (string, bool) {
	p, ok := c.Prices[currency]
	if !ok || p == nil {
		return "", false
	}
	return *p, true
}
