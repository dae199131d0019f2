package card

import "slices"

// Rarity of a printing.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RaritySpecial  Rarity = "special"
	RarityMythic   Rarity = "mythic"
	RarityBonus    Rarity = "bonus"
)

// Rarities lists every Rarity in declaration order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RaritySpecial, RarityMythic, RarityBonus}

func (r Rarity) Valid() bool { return slices.Contains(Rarities, r) }

// ImageStatus describes the quality of the images Scryfall has for a card.
type ImageStatus string

const (
	ImageStatusMissing     ImageStatus = "missing"
	ImageStatusPlaceholder ImageStatus = "placeholder"
	ImageStatusLowres      ImageStatus = "lowres"
	ImageStatusHighresScan ImageStatus = "highres_scan"
)

var ImageStatuses = []ImageStatus{ImageStatusMissing, ImageStatusPlaceholder, ImageStatusLowres, ImageStatusHighresScan}

func (s ImageStatus) Valid() bool { return slices.Contains(ImageStatuses, s) }

// SecurityStamp is the holofoil stamp printed on a card, if any.
type SecurityStamp string

const (
	SecurityStampOval     SecurityStamp = "oval"
	SecurityStampTriangle SecurityStamp = "triangle"
	SecurityStampAcorn    SecurityStamp = "acorn"
	SecurityStampCircle   SecurityStamp = "circle"
	SecurityStampArena    SecurityStamp = "arena"
	SecurityStampHeart    SecurityStamp = "heart"
)

var SecurityStamps = []SecurityStamp{
	SecurityStampOval, SecurityStampTriangle, SecurityStampAcorn,
	SecurityStampCircle, SecurityStampArena, SecurityStampHeart,
}

func (s SecurityStamp) Valid() bool { return slices.Contains(SecurityStamps, s) }

// Legality of a card in a single play format.
type Legality string

const (
	LegalityLegal      Legality = "legal"
	LegalityNotLegal   Legality = "not_legal"
	LegalityRestricted Legality = "restricted"
	LegalityBanned     Legality = "banned"
)

var Legalities = []Legality{LegalityLegal, LegalityNotLegal, LegalityRestricted, LegalityBanned}

func (l Legality) Valid() bool { return slices.Contains(Legalities, l) }

// Component is the role a RelatedCard plays.
type Component string

const (
	ComponentToken      Component = "token"
	ComponentMeldPart   Component = "meld_part"
	ComponentMeldResult Component = "meld_result"
	ComponentComboPiece Component = "combo_piece"
)

var Components = []Component{ComponentToken, ComponentMeldPart, ComponentMeldResult, ComponentComboPiece}

func (c Component) Valid() bool { return slices.Contains(Components, c) }
