package brackets

// Curated classification lists maintained from Wizards/RC bracket guidance.
// These are compiled in; only the tutor set is fetched live (see snapshot.go).

// gameChangerList holds the current Game Changers list.
var gameChangerList = []string{
	"Ad Nauseam", "Ancient Tomb", "Aura Shards", "Bolas's Citadel",
	"Braids, Cabal Minion", "Chrome Mox", "Coalition Victory",
	"Consecrated Sphinx", "Crop Rotation", "Cyclonic Rift",
	"Demonic Tutor", "Drannith Magistrate", "Enlightened Tutor",
	"Field of the Dead", "Fierce Guardianship", "Force of Will",
	"Gaea's Cradle", "Gamble", "Gifts Ungiven", "Glacial Chasm",
	"Grand Arbiter Augustin IV", "Grim Monolith", "Humility",
	"Imperial Seal", "Intuition", "Jeska's Will", "Lion's Eye Diamond",
	"Mana Vault", "Mishra's Workshop", "Mox Diamond", "Mystical Tutor",
	"Narset, Parter of Veils", "Natural Order", "Necropotence",
	"Notion Thief", "Opposition Agent", "Orcish Bowmasters",
	"Panoptic Mirror", "Rhystic Study", "Seedborn Muse", "Serra's Sanctum",
	"Smothering Tithe", "Survival of the Fittest", "Teferi's Protection",
	"Tergrid, God of Fright // Tergrid's Lantern", "Tergrid, God of Fright",
	"Thassa's Oracle", "The One Ring", "The Tabernacle at Pendrell Vale",
	"Underworld Breach", "Vampiric Tutor", "Worldly Tutor",
}

// gameChangersRemoved2025 lists cards dropped from the Game Changers list in
// the October 2025 update. Exposed by the brackets info endpoint.
var gameChangersRemoved2025 = []string{
	"Expropriate", "Jin-Gitaxias, Core Augur", "Sway of the Stars",
	"Vorinclex, Voice of Hunger", "Kinnan, Bonder Prodigy",
	"Urza, Lord High Artificer", "Winota, Joiner of Forces",
	"Yuriko, the Tiger's Shadow", "Deflecting Swat", "Food Chain",
}

// massLandDenialList holds cards that deny many lands at once.
var massLandDenialList = []string{
	"Acid Rain", "Apocalypse", "Armageddon", "Back to Basics",
	"Bearer of the Heavens", "Bend or Break", "Blood Moon", "Boil",
	"Boiling Seas", "Boom // Bust", "Break the Ice", "Burning of Xinye",
	"Cataclysm", "Catastrophe", "Choke", "Cleansing", "Contamination",
	"Conversion", "Curse of Marit Lage", "Death Cloud",
	"Decree of Annihilation", "Desolation Angel", "Destructive Force",
	"Devastating Dreams", "Devastation", "Dimensional Breach",
	"Disciple of Caelus Nin", "Epicenter", "Fall of the Thran",
	"Flashfires", "Gilt-Leaf Archdruid", "Glaciers", "Global Ruin",
	"Hall of Gemstone", "Harbinger of the Seas", "Hokori, Dust Drinker",
	"Impending Disaster", "Infernal Darkness", "Jokulhaups",
	"Keldon Firebombers", "Land Equilibrium", "Magus of the Balance",
	"Magus of the Moon", "Myojin of Infinite Rage", "Naked Singularity",
	"Natural Balance", "Obliterate", "Omen of Fire", "Raiding Party",
	"Ravages of War", "Razia's Purification", "Reality Twist",
	"Realm Razer", "Restore Balance", "Rising Waters", "Ritual of Subdual",
	"Ruination", "Soulscour", "Stasis", "Static Orb", "Storm Cauldron",
	"Sunder", "Sway of the Stars", "Tectonic Break", "Thoughts of Ruin",
	"Tsunami", "Wake of Destruction", "Wildfire", "Winter Moon",
	"Winter Orb", "Worldfire", "Worldpurge", "Worldslayer",
}

// comboPairList holds early-game two-card combo pairs from EDHRec. Both
// pieces must be present in a deck to flag the combo.
var comboPairList = [][2]string{
	{"Demonic Consultation", "Thassa's Oracle"},
	{"Tainted Pact", "Thassa's Oracle"},
	{"Tainted Pact", "Laboratory Maniac"},
	{"Demonic Consultation", "Laboratory Maniac"},
	{"Exquisite Blood", "Sanguine Bond"},
	{"Exquisite Blood", "Vito, Thorn of the Dusk Rose"},
	{"Dramatic Reversal", "Isochron Scepter"},
	{"Dualcaster Mage", "Twinflame"},
	{"Dualcaster Mage", "Heat Shimmer"},
	{"Niv-Mizzet, Parun", "Curiosity"},
	{"Niv-Mizzet, Parun", "Ophidian Eye"},
	{"Niv-Mizzet, Parun", "Tandem Lookout"},
	{"Niv-Mizzet, the Firemind", "Curiosity"},
	{"Niv-Mizzet, the Firemind", "Ophidian Eye"},
	{"Niv-Mizzet, the Firemind", "Tandem Lookout"},
	{"Gravecrawler", "Phyrexian Altar"},
	{"Gravecrawler", "Pitiless Plunderer"},
	{"Exquisite Blood", "Bloodthirsty Conqueror"},
	{"Sanguine Bond", "Bloodthirsty Conqueror"},
	{"Chatterfang, Squirrel General", "Pitiless Plunderer"},
	{"Bloodchief Ascension", "Mindcrank"},
	{"Basalt Monolith", "Rings of Brighthearth"},
	{"Basalt Monolith", "Forsaken Monument"},
	{"Exquisite Blood", "Marauding Blight-Priest"},
	{"Heliod, Sun-Crowned", "Walking Ballista"},
	{"Maddening Cacophony", "Bruvac the Grandiloquent"},
	{"Maddening Cacophony", "Fraying Sanity"},
	{"Enduring Tenacity", "Peregrin Took"},
	{"Nuka-Cola Vending Machine", "Kinnan, Bonder Prodigy"},
	{"Dualcaster Mage", "Molten Duplication"},
	{"Felidar Guardian", "Restoration Angel"},
	{"Peregrine Drake", "Deadeye Navigator"},
	{"The Gitrog Monster", "Dakmor Salvage"},
	{"Squee, the Immortal", "Food Chain"},
	{"Eternal Scourge", "Food Chain"},
	{"Blasphemous Act", "Repercussion"},
	{"Experimental Confectioner", "The Reaver Cleaver"},
	{"Aggravated Assault", "Sword of Feast and Famine"},
	{"Aggravated Assault", "Bear Umbra"},
	{"Aggravated Assault", "Savage Ventmaw"},
	{"Aggravated Assault", "Neheb, the Eternal"},
	{"Kiki-Jiki, Mirror Breaker", "Zealous Conscripts"},
	{"Kiki-Jiki, Mirror Breaker", "Felidar Guardian"},
	{"Kiki-Jiki, Mirror Breaker", "Restoration Angel"},
	{"Kiki-Jiki, Mirror Breaker", "Village Bell-Ringer"},
	{"Kiki-Jiki, Mirror Breaker", "Combat Celebrant"},
	{"Staff of Domination", "Priest of Titania"},
	{"Staff of Domination", "Elvish Archdruid"},
	{"Staff of Domination", "Circle of Dreams Druid"},
	{"Staff of Domination", "Bloom Tender"},
	{"Umbral Mantle", "Priest of Titania"},
	{"Umbral Mantle", "Elvish Archdruid"},
	{"Umbral Mantle", "Circle of Dreams Druid"},
	{"Umbral Mantle", "Bloom Tender"},
	{"Umbral Mantle", "Selvala, Heart of the Wilds"},
	{"Dualcaster Mage", "Saw in Half"},
	{"Godo, Bandit Warlord", "Helm of the Host"},
	{"Scurry Oak", "Ivy Lane Denizen"},
	{"Ashaya, Soul of the Wild", "Quirion Ranger"},
	{"Ashaya, Soul of the Wild", "Scryb Ranger"},
	{"Marwyn, the Nurturer", "Umbral Mantle"},
	{"Malcolm, Keen-Eyed Navigator", "Glint-Horn Buccaneer"},
	{"Storm-Kiln Artist", "Haze of Rage"},
	{"Karn, the Great Creator", "Mycosynth Lattice"},
	{"Traumatize", "Maddening Cacophony"},
	{"Traumatize", "Bruvac the Grandiloquent"},
	{"Kaalia of the Vast", "Master of Cruelties"},
	{"Forensic Gadgeteer", "Toralf, God of Fury"},
	{"Professor Onyx", "Chain of Smog"},
	{"Witherbloom Apprentice", "Chain of Smog"},
	{"Solphim, Mayhem Dominus", "Heartless Hidetsugu"},
	{"Cut Your Losses", "Bruvac the Grandiloquent"},
	{"Starscape Cleric", "Peregrin Took"},
	{"Ondu Spiritdancer", "Secret Arcade"},
	{"Ondu Spiritdancer", "Dusty Parlor"},
	{"Vandalblast", "Toralf, God of Fury"},
	{"Nest of Scarabs", "Blowfly Infestation"},
	{"Duskmantle Guildmage", "Mindcrank"},
	{"Rosie Cotton of South Lane", "Peregrin Took"},
	{"Terisian Mindbreaker", "Maddening Cacophony"},
	{"Bloom Tender", "Freed from the Real"},
	{"Priest of Titania", "Freed from the Real"},
	{"Devoted Druid", "Swift Reconfiguration"},
	{"Basking Broodscale", "Ivy Lane Denizen"},
	{"Ratadrabik of Urborg", "Boromir, Warden of the Tower"},
	{"Dualcaster Mage", "Electroduplicate"},
	{"Abdel Adrian, Gorion's Ward", "Animate Dead"},
	{"Animate Dead", "Worldgorger Dragon"},
	{"Tivit, Seller of Secrets", "Time Sieve"},
	{"Satya, Aetherflux Genius", "Lightning Runner"},
	{"Ghostly Flicker", "Naru Meha, Master Wizard"},
	{"Ghostly Flicker", "Dualcaster Mage"},
	{"Vizkopa Guildmage", "Exquisite Blood"},
	{"Doomsday", "Thassa's Oracle"},
	{"Doomsday", "Laboratory Maniac"},
	{"Heliod, Sun-Crowned", "Triskelion"},
	{"Grindstone", "Painter's Servant"},
	{"Splinter Twin", "Pestermite"},
	{"Splinter Twin", "Deceiver Exarch"},
}

// tutorFallbackList is used when the live Scryfall otag:tutor search fails.
var tutorFallbackList = []string{
	"Demonic Tutor", "Vampiric Tutor", "Imperial Seal", "Grim Tutor",
	"Mystical Tutor", "Worldly Tutor", "Enlightened Tutor", "Beseech the Mirror",
	"Diabolic Intent", "Song of the Dryads", "Natural Order", "Chord of Calling",
	"Finale of Devastation", "Finale of Promise", "Rite of the Raging Storm",
	"Academy Rector", "Arena Rector", "Spellseeker", "Weathered Wayfarer",
	"Gamble", "Merchant Scroll", "Muddle the Mixture", "Transmute Artifact",
	"Tinker", "Demonic Consultation", "Tainted Pact",
}

// extraTurnFallbackList is used when the oracletag:extra-turn search fails.
var extraTurnFallbackList = []string{
	"A-Alrund's Epiphany", "Alchemist's Gambit", "Alrund's Epiphany", "Beacon of Tomorrows",
	"Capture of Jingzhou", "Chance for Glory", "Emrakul, the Aeons Torn", "Emrakul, the Promised End",
	"Eon Frolicker", "Expropriate", "Final Fortune", "Gonti's Aether Heart", "Ichormoon Gauntlet",
	"Karn's Temporal Sundering", "Last Chance", "Lighthouse Chronologist", "Lost Isle Calling",
	"Magistrate's Scepter", "Magosi, the Waterveil", "Medomai the Ageless", "Mu Yanling",
	"Nexus of Fate", "Notorious Throng", "Part the Waterveil", "Phone a Friend", "Piece It Together",
	"Plea for Power", "Ral Zarek", "Regenerations Restored", "Rise of the Eldrazi", "Sage of Hours",
	"Savor the Moment", "Search the City", "Second Chance", "Seedtime", "Stitch in Time",
	"Teferi, Master of Time", "Teferi, Timebender", "Temporal Extortion", "Temporal Manipulation",
	"Temporal Mastery", "Temporal Trespass", "The Legend of Kuruk // Avatar Kuruk", "Time Sieve",
	"Timesifter", "Timestream Navigator", "Time Stretch", "Time Vault", "Time Walk", "Time Warp",
	"Twice Upon a Time // Unlikely Meeting", "Ugin's Nexus", "Ultimecia, Time Sorceress // Ultimecia, Omnipotent",
	"Walk the Aeons", "Wanderwine Prophets", "Warrior's Oath", "Wormfang Manta",
}

// Card pools used by the cEDH scoring heuristic. A card only contributes when
// it is also flagged as a game changer.
var (
	fastManaCards = nameSet(
		"Sol Ring", "Mana Crypt", "Mana Vault", "Chrome Mox", "Mox Diamond",
		"Mox Opal", "Lotus Petal", "Dark Ritual", "Cabal Ritual", "Ancient Tomb",
		"Mishra's Workshop", "Grim Monolith",
	)

	premiumTutorCards = nameSet(
		"Demonic Tutor", "Vampiric Tutor", "Imperial Seal", "Grim Tutor",
		"Mystical Tutor", "Worldly Tutor", "Enlightened Tutor",
		"Beseech the Mirror",
	)

	premiumInteractionCards = nameSet(
		"Force of Will", "Force of Negation", "Mana Drain", "Counterspell",
		"Spell Pierce", "Misdirection", "Pact of Negation",
	)

	bestComboPieces = nameSet(
		"Thassa's Oracle", "Demonic Consultation", "Tainted Pact",
		"Exquisite Blood", "Sanguine Bond",
	)

	premiumEngineCards = nameSet(
		"Necropotence", "Ad Nauseam", "Underworld Breach", "Yawgmoth's Will",
		"Timetwister", "Wheel of Fortune",
	)
)

func nameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func nameSetFromSlice(names []string) map[string]bool {
	return nameSet(names...)
}
