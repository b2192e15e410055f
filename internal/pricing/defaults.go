package pricing

import "github.com/mwren/craftcost/internal/domain"

// defaultVendorPrices lists items that are always in stock at a fixed price
// from master-craftsman vendors. Prices are in copper.
var defaultVendorPrices = map[domain.ItemID]int{
	46747: 150, // Thermocatalytic Reagent
	19790: 64,  // Spool of Gossamer Thread
	19791: 48,  // Spool of Silk Thread
	19793: 32,  // Spool of Linen Thread
	19794: 24,  // Spool of Cotton Thread
	19789: 16,  // Spool of Wool Thread
	19792: 8,   // Spool of Jute Thread
	76839: 56,  // Milling Basin
	19704: 8,   // Lump of Tin
	19750: 16,  // Lump of Coal
	19924: 48,  // Lump of Primordium
}

// defaultSpecialRules covers items with no vendor but a known acquisition
// cost outside the trading post.
var defaultSpecialRules = map[domain.ItemID]SpecialRule{
	// Obsidian Shard: 5 per Guild Commendation daily, commendation ~50s.
	19925: {Flat: 1000},
	// Charged Quartz Crystal: 25 Quartz Crystals charged at a place of
	// power daily, so it costs whatever 25 crystals cost on the market.
	43772: {DerivedFrom: 43773, Quantity: 25},
	// Plaguedoctor's Orichalcum-Imbued Inscription: 2500 Volatile Magic
	// plus 50 Inscribed Shards, at roughly 16c per Volatile Magic.
	87809: {Flat: 2 * 56000},
	// Plaguedoctor's Intricate Gossamer Insignia: half the inscription.
	88011: {Flat: 2 * 28000},
	// Branded Mass: 20 Volatile Magic.
	89537: {Flat: 320},
	// Exquisite Serpentite Jewel: daily chest behind a catacombs puzzle.
	89696: {Flat: 100000},
	// Rough estimates for the three elite-spec material drops.
	69434: {Flat: 1000}, // Bottle of Airship Oil
	69432: {Flat: 1000}, // Pile of Auric Dust
	69392: {Flat: 1000}, // Ley Line Spark
}

// DefaultOfferings is the curated offering set: the dungeon gifts, which
// are purchasable only with untradeable dungeon currencies.
var DefaultOfferings = []domain.ItemID{
	19672, // Gift of Ascalon
	19673, // Gift of Sorrow
	19674, // Gift of Darkness
	19675, // Gift of Mastery component gifts
	19676,
	19677,
	19678,
	19679,
}
