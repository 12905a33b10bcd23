package rulebook

// SRD 5.1 data. Every character build is validated against these tables.

// Races holds the playable races in display order.
var Races = []Race{
	{Name: "Dragonborn", Speed: 30,
		AbilityBonuses: map[string]int{AbilityStrength: 2, AbilityCharisma: 1},
		Traits:         []string{"Draconic Ancestry", "Breath Weapon", "Damage Resistance"}},
	{Name: "Dwarf (Hill)", Speed: 25,
		AbilityBonuses: map[string]int{AbilityConstitution: 2, AbilityWisdom: 1},
		Traits:         []string{"Darkvision", "Dwarven Resilience", "Stonecunning", "Dwarven Toughness"}},
	{Name: "Dwarf (Mountain)", Speed: 25,
		AbilityBonuses: map[string]int{AbilityConstitution: 2, AbilityStrength: 2},
		Traits:         []string{"Darkvision", "Dwarven Resilience", "Stonecunning", "Dwarven Armor Training"}},
	{Name: "Elf (High)", Speed: 30,
		AbilityBonuses: map[string]int{AbilityDexterity: 2, AbilityIntelligence: 1},
		Traits:         []string{"Darkvision", "Keen Senses", "Fey Ancestry", "Trance", "Elf Weapon Training", "Cantrip", "Extra Language"}},
	{Name: "Elf (Wood)", Speed: 35,
		AbilityBonuses: map[string]int{AbilityDexterity: 2, AbilityWisdom: 1},
		Traits:         []string{"Darkvision", "Keen Senses", "Fey Ancestry", "Trance", "Elf Weapon Training", "Fleet of Foot", "Mask of the Wild"}},
	{Name: "Elf (Drow)", Speed: 30,
		AbilityBonuses: map[string]int{AbilityDexterity: 2, AbilityCharisma: 1},
		Traits:         []string{"Superior Darkvision", "Keen Senses", "Fey Ancestry", "Trance", "Sunlight Sensitivity", "Drow Magic", "Drow Weapon Training"}},
	{Name: "Gnome (Forest)", Speed: 25,
		AbilityBonuses: map[string]int{AbilityIntelligence: 2, AbilityDexterity: 1},
		Traits:         []string{"Darkvision", "Gnome Cunning", "Natural Illusionist", "Speak with Small Beasts"}},
	{Name: "Gnome (Rock)", Speed: 25,
		AbilityBonuses: map[string]int{AbilityIntelligence: 2, AbilityConstitution: 1},
		Traits:         []string{"Darkvision", "Gnome Cunning", "Artificer's Lore", "Tinker"}},
	{Name: "Half-Elf", Speed: 30,
		AbilityBonuses: map[string]int{AbilityCharisma: 2},
		Traits:         []string{"Darkvision", "Fey Ancestry", "Skill Versatility"}},
	{Name: "Half-Orc", Speed: 30,
		AbilityBonuses: map[string]int{AbilityStrength: 2, AbilityConstitution: 1},
		Traits:         []string{"Darkvision", "Menacing", "Relentless Endurance", "Savage Attacks"}},
	{Name: "Halfling (Lightfoot)", Speed: 25,
		AbilityBonuses: map[string]int{AbilityDexterity: 2, AbilityCharisma: 1},
		Traits:         []string{"Lucky", "Brave", "Halfling Nimbleness", "Naturally Stealthy"}},
	{Name: "Halfling (Stout)", Speed: 25,
		AbilityBonuses: map[string]int{AbilityDexterity: 2, AbilityConstitution: 1},
		Traits:         []string{"Lucky", "Brave", "Halfling Nimbleness", "Stout Resilience"}},
	{Name: "Human", Speed: 30,
		AbilityBonuses: map[string]int{
			AbilityStrength: 1, AbilityDexterity: 1, AbilityConstitution: 1,
			AbilityIntelligence: 1, AbilityWisdom: 1, AbilityCharisma: 1,
		},
		Traits: []string{"Extra Language"}},
	{Name: "Tiefling", Speed: 30,
		AbilityBonuses: map[string]int{AbilityIntelligence: 1, AbilityCharisma: 2},
		Traits:         []string{"Darkvision", "Hellish Resistance", "Infernal Legacy"}},
}

// Classes holds the character classes in display order.
var Classes = []Class{
	{Name: "Barbarian", HitDie: 12, PrimaryAbility: "Strength",
		SavingThrows:        []string{"Strength", "Constitution"},
		ArmorProficiencies:  []string{"Light armor", "Medium armor", "Shields"},
		WeaponProficiencies: []string{"Simple weapons", "Martial weapons"},
		SkillChoices:        []string{"Animal Handling", "Athletics", "Intimidation", "Nature", "Perception", "Survival"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Rage", "Unarmored Defense"},
			2: {"Reckless Attack", "Danger Sense"},
		}},
	{Name: "Bard", HitDie: 8, PrimaryAbility: "Charisma",
		SavingThrows:        []string{"Dexterity", "Charisma"},
		ArmorProficiencies:  []string{"Light armor"},
		WeaponProficiencies: []string{"Simple weapons", "Hand crossbows", "Longswords", "Rapiers", "Shortswords"},
		SkillChoices:        []string{"Any"},
		NumSkills:           3,
		FeaturesByLevel: map[int][]string{
			1: {"Spellcasting", "Bardic Inspiration (d6)"},
			2: {"Jack of All Trades", "Song of Rest (d6)"},
		}},
	{Name: "Cleric", HitDie: 8, PrimaryAbility: "Wisdom",
		SavingThrows:        []string{"Wisdom", "Charisma"},
		ArmorProficiencies:  []string{"Light armor", "Medium armor", "Shields"},
		WeaponProficiencies: []string{"Simple weapons"},
		SkillChoices:        []string{"History", "Insight", "Medicine", "Persuasion", "Religion"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Spellcasting", "Divine Domain"},
			2: {"Channel Divinity (1/rest)", "Divine Domain Feature"},
		}},
	{Name: "Druid", HitDie: 8, PrimaryAbility: "Wisdom",
		SavingThrows:        []string{"Intelligence", "Wisdom"},
		ArmorProficiencies:  []string{"Light armor (nonmetal)", "Medium armor (nonmetal)", "Shields (nonmetal)"},
		WeaponProficiencies: []string{"Clubs", "Daggers", "Darts", "Javelins", "Maces", "Quarterstaffs", "Scimitars", "Sickles", "Slings", "Spears"},
		SkillChoices:        []string{"Arcana", "Animal Handling", "Insight", "Medicine", "Nature", "Perception", "Religion", "Survival"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Druidic", "Spellcasting"},
			2: {"Wild Shape", "Druid Circle"},
		}},
	{Name: "Fighter", HitDie: 10, PrimaryAbility: "Strength or Dexterity",
		SavingThrows:        []string{"Strength", "Constitution"},
		ArmorProficiencies:  []string{"All armor", "Shields"},
		WeaponProficiencies: []string{"Simple weapons", "Martial weapons"},
		SkillChoices:        []string{"Acrobatics", "Animal Handling", "Athletics", "History", "Insight", "Intimidation", "Perception", "Survival"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Fighting Style", "Second Wind"},
			2: {"Action Surge (one use)"},
		}},
	{Name: "Monk", HitDie: 8, PrimaryAbility: "Dexterity & Wisdom",
		SavingThrows:        []string{"Strength", "Dexterity"},
		ArmorProficiencies:  []string{},
		WeaponProficiencies: []string{"Simple weapons", "Shortswords"},
		SkillChoices:        []string{"Acrobatics", "Athletics", "History", "Insight", "Religion", "Stealth"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Unarmored Defense", "Martial Arts"},
			2: {"Ki", "Unarmored Movement"},
		}},
	{Name: "Paladin", HitDie: 10, PrimaryAbility: "Strength & Charisma",
		SavingThrows:        []string{"Wisdom", "Charisma"},
		ArmorProficiencies:  []string{"All armor", "Shields"},
		WeaponProficiencies: []string{"Simple weapons", "Martial weapons"},
		SkillChoices:        []string{"Athletics", "Insight", "Intimidation", "Medicine", "Persuasion", "Religion"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Divine Sense", "Lay on Hands"},
			2: {"Fighting Style", "Spellcasting", "Divine Smite"},
		}},
	{Name: "Ranger", HitDie: 10, PrimaryAbility: "Dexterity & Wisdom",
		SavingThrows:        []string{"Strength", "Dexterity"},
		ArmorProficiencies:  []string{"Light armor", "Medium armor", "Shields"},
		WeaponProficiencies: []string{"Simple weapons", "Martial weapons"},
		SkillChoices:        []string{"Animal Handling", "Athletics", "Insight", "Investigation", "Nature", "Perception", "Stealth", "Survival"},
		NumSkills:           3,
		FeaturesByLevel: map[int][]string{
			1: {"Favored Enemy", "Natural Explorer"},
			2: {"Fighting Style", "Spellcasting"},
		}},
	{Name: "Rogue", HitDie: 8, PrimaryAbility: "Dexterity",
		SavingThrows:        []string{"Dexterity", "Intelligence"},
		ArmorProficiencies:  []string{"Light armor"},
		WeaponProficiencies: []string{"Simple weapons", "Hand crossbows", "Longswords", "Rapiers", "Shortswords"},
		SkillChoices:        []string{"Acrobatics", "Athletics", "Deception", "Insight", "Intimidation", "Investigation", "Perception", "Performance", "Persuasion", "Sleight of Hand", "Stealth"},
		NumSkills:           4,
		FeaturesByLevel: map[int][]string{
			1: {"Expertise", "Sneak Attack (1d6)", "Thieves' Cant"},
			2: {"Cunning Action"},
		}},
	{Name: "Sorcerer", HitDie: 6, PrimaryAbility: "Charisma",
		SavingThrows:        []string{"Constitution", "Charisma"},
		ArmorProficiencies:  []string{},
		WeaponProficiencies: []string{"Daggers", "Darts", "Slings", "Quarterstaffs", "Light crossbows"},
		SkillChoices:        []string{"Arcana", "Deception", "Insight", "Intimidation", "Persuasion", "Religion"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Spellcasting", "Sorcerous Origin"},
			2: {"Font of Magic"},
		}},
	{Name: "Warlock", HitDie: 8, PrimaryAbility: "Charisma",
		SavingThrows:        []string{"Wisdom", "Charisma"},
		ArmorProficiencies:  []string{"Light armor"},
		WeaponProficiencies: []string{"Simple weapons"},
		SkillChoices:        []string{"Arcana", "Deception", "History", "Intimidation", "Investigation", "Nature", "Religion"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Otherworldly Patron", "Pact Magic"},
			2: {"Eldritch Invocations"},
		}},
	{Name: "Wizard", HitDie: 6, PrimaryAbility: "Intelligence",
		SavingThrows:        []string{"Intelligence", "Wisdom"},
		ArmorProficiencies:  []string{},
		WeaponProficiencies: []string{"Daggers", "Darts", "Slings", "Quarterstaffs", "Light crossbows"},
		SkillChoices:        []string{"Arcana", "History", "Insight", "Investigation", "Medicine", "Religion"},
		NumSkills:           2,
		FeaturesByLevel: map[int][]string{
			1: {"Spellcasting", "Arcane Recovery"},
			2: {"Arcane Tradition"},
		}},
}

// Backgrounds holds the character backgrounds in display order.
var Backgrounds = []Background{
	{Name: "Acolyte",
		SkillProficiencies: []string{"Insight", "Religion"},
		Equipment:          []string{"Holy symbol", "Prayer book", "5 sticks of incense", "Vestments", "Common clothes", "15 gp pouch"},
		Feature:            "Shelter of the Faithful"},
	{Name: "Criminal",
		SkillProficiencies: []string{"Deception", "Stealth"},
		Equipment:          []string{"Crowbar", "Dark common clothes with hood", "15 gp pouch"},
		Feature:            "Criminal Contact"},
	{Name: "Folk Hero",
		SkillProficiencies: []string{"Animal Handling", "Survival"},
		Equipment:          []string{"Artisan's tools", "Shovel", "Iron pot", "Common clothes", "10 gp pouch"},
		Feature:            "Rustic Hospitality"},
	{Name: "Noble",
		SkillProficiencies: []string{"History", "Persuasion"},
		Equipment:          []string{"Fine clothes", "Signet ring", "Scroll of pedigree", "25 gp purse"},
		Feature:            "Position of Privilege"},
	{Name: "Sage",
		SkillProficiencies: []string{"Arcana", "History"},
		Equipment:          []string{"Bottle of ink", "Quill", "Small knife", "Letter with unanswered question", "Common clothes", "10 gp pouch"},
		Feature:            "Researcher"},
	{Name: "Soldier",
		SkillProficiencies: []string{"Athletics", "Intimidation"},
		Equipment:          []string{"Insignia of rank", "Trophy from fallen enemy", "Deck of cards", "Common clothes", "10 gp pouch"},
		Feature:            "Military Rank"},
	{Name: "Charlatan",
		SkillProficiencies: []string{"Deception", "Sleight of Hand"},
		Equipment:          []string{"Fine clothes", "Disguise kit", "Con tools", "15 gp pouch"},
		Feature:            "False Identity"},
	{Name: "Entertainer",
		SkillProficiencies: []string{"Acrobatics", "Performance"},
		Equipment:          []string{"Musical instrument", "Favor of admirer", "Costume", "15 gp pouch"},
		Feature:            "By Popular Demand"},
	{Name: "Guild Artisan",
		SkillProficiencies: []string{"Insight", "Persuasion"},
		Equipment:          []string{"Artisan's tools", "Letter of introduction", "Traveler's clothes", "15 gp pouch"},
		Feature:            "Guild Membership"},
	{Name: "Hermit",
		SkillProficiencies: []string{"Medicine", "Religion"},
		Equipment:          []string{"Scroll case with notes", "Winter blanket", "Common clothes", "Herbalism kit", "5 gp"},
		Feature:            "Discovery"},
	{Name: "Outlander",
		SkillProficiencies: []string{"Athletics", "Survival"},
		Equipment:          []string{"Staff", "Hunting trap", "Trophy from animal", "Traveler's clothes", "10 gp pouch"},
		Feature:            "Wanderer"},
	{Name: "Sailor",
		SkillProficiencies: []string{"Athletics", "Perception"},
		Equipment:          []string{"Belaying pin", "50 feet silk rope", "Lucky charm", "Common clothes", "10 gp pouch"},
		Feature:            "Ship's Passage"},
	{Name: "Urchin",
		SkillProficiencies: []string{"Sleight of Hand", "Stealth"},
		Equipment:          []string{"Small knife", "Map of home city", "Pet mouse", "Token from parents", "Common clothes", "10 gp pouch"},
		Feature:            "City Secrets"},
}

// Alignments lists the nine alignments in grid order.
var Alignments = []string{
	"Lawful Good", "Neutral Good", "Chaotic Good",
	"Lawful Neutral", "True Neutral", "Chaotic Neutral",
	"Lawful Evil", "Neutral Evil", "Chaotic Evil",
}

// Skills lists every skill with its governing ability.
var Skills = []Skill{
	{Name: "Acrobatics", Ability: AbilityDexterity},
	{Name: "Animal Handling", Ability: AbilityWisdom},
	{Name: "Arcana", Ability: AbilityIntelligence},
	{Name: "Athletics", Ability: AbilityStrength},
	{Name: "Deception", Ability: AbilityCharisma},
	{Name: "History", Ability: AbilityIntelligence},
	{Name: "Insight", Ability: AbilityWisdom},
	{Name: "Intimidation", Ability: AbilityCharisma},
	{Name: "Investigation", Ability: AbilityIntelligence},
	{Name: "Medicine", Ability: AbilityWisdom},
	{Name: "Nature", Ability: AbilityIntelligence},
	{Name: "Perception", Ability: AbilityWisdom},
	{Name: "Performance", Ability: AbilityCharisma},
	{Name: "Persuasion", Ability: AbilityCharisma},
	{Name: "Religion", Ability: AbilityIntelligence},
	{Name: "Sleight of Hand", Ability: AbilityDexterity},
	{Name: "Stealth", Ability: AbilityDexterity},
	{Name: "Survival", Ability: AbilityWisdom},
}
