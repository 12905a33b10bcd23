package ai

import (
	"fmt"
	"strings"

	"github.com/characterforge/characterforge/internal/clients/ollama"
)

// srdSummary is a compact rules digest injected into every prompt so the
// model answers from the same tables the calculator uses.
const srdSummary = `
=== D&D 5e SRD RULES (immutable source of truth) ===

ABILITY SCORES: STR, DEX, CON, INT, WIS, CHA. Modifier = (score-10)//2.
Proficiency bonus: levels 1-4=+2, 5-8=+3, 9-12=+4, 13-16=+5, 17-20=+6.
Standard array: 15,14,13,12,10,8. Point buy: 27 points, scores 8-15 before racial bonuses.

RACES & BONUSES:
- Dragonborn: STR+2 CHA+1, 30ft, Breath Weapon, Damage Resistance
- Dwarf (Hill): CON+2 WIS+1, 25ft, Darkvision, Dwarven Toughness (+1 HP/level)
- Dwarf (Mountain): CON+2 STR+2, 25ft, Darkvision, Armor Training
- Elf (High): DEX+2 INT+1, 30ft, Darkvision, Trance, Cantrip
- Elf (Wood): DEX+2 WIS+1, 35ft, Darkvision, Fleet of Foot, Mask of the Wild
- Elf (Drow): DEX+2 CHA+1, 30ft, Superior Darkvision, Sunlight Sensitivity
- Gnome (Forest): INT+2 DEX+1, 25ft, Darkvision, Gnome Cunning
- Gnome (Rock): INT+2 CON+1, 25ft, Darkvision, Artificer's Lore
- Half-Elf: CHA+2 + two others+1, 30ft, Darkvision, Skill Versatility (2 skills)
- Half-Orc: STR+2 CON+1, 30ft, Darkvision, Relentless Endurance, Savage Attacks
- Halfling (Lightfoot): DEX+2 CHA+1, 25ft, Lucky, Brave, Naturally Stealthy
- Halfling (Stout): DEX+2 CON+1, 25ft, Lucky, Brave, Stout Resilience
- Human: All stats+1, 30ft, extra language
- Tiefling: INT+1 CHA+2, 30ft, Darkvision, Hellish Resistance, Infernal Legacy

CLASSES (hit die, primary stat, saves):
- Barbarian: d12, STR, STR+CON. Rage, Unarmored Defense (10+CON+DEX), Reckless Attack
- Bard: d8, CHA, DEX+CHA. Spellcasting, Bardic Inspiration, Jack of All Trades
- Cleric: d8, WIS, WIS+CHA. Spellcasting, Divine Domain, Channel Divinity
- Druid: d8, WIS, INT+WIS. Spellcasting, Wild Shape, Druid Circle
- Fighter: d10, STR or DEX, STR+CON. Fighting Style, Second Wind, Action Surge
- Monk: d8, DEX+WIS, STR+DEX. Martial Arts, Ki, Unarmored Defense (10+DEX+WIS)
- Paladin: d10, STR+CHA, WIS+CHA. Lay on Hands, Divine Smite, Aura of Protection
- Ranger: d10, DEX+WIS, STR+DEX. Favored Enemy, Natural Explorer, Spellcasting
- Rogue: d8, DEX, DEX+INT. Sneak Attack, Cunning Action, Expertise
- Sorcerer: d6, CHA, CON+CHA. Spellcasting, Sorcerous Origin, Font of Magic
- Warlock: d8, CHA, WIS+CHA. Pact Magic (short rest slots), Eldritch Invocations
- Wizard: d6, INT, INT+WIS. Spellcasting, Arcane Recovery, Spell Mastery

BACKGROUNDS (skill proficiencies):
Acolyte: Insight+Religion | Criminal: Deception+Stealth | Folk Hero: Animal Handling+Survival
Noble: History+Persuasion | Sage: Arcana+History | Soldier: Athletics+Intimidation
Charlatan: Deception+Sleight of Hand | Entertainer: Acrobatics+Performance
Guild Artisan: Insight+Persuasion | Hermit: Medicine+Religion | Outlander: Athletics+Survival
Sailor: Athletics+Perception | Urchin: Sleight of Hand+Stealth

SKILLS (ability): Acrobatics(DEX) Animal Handling(WIS) Arcana(INT) Athletics(STR)
Deception(CHA) History(INT) Insight(WIS) Intimidation(CHA) Investigation(INT)
Medicine(WIS) Nature(INT) Perception(WIS) Performance(CHA) Persuasion(CHA)
Religion(INT) Sleight of Hand(DEX) Stealth(DEX) Survival(WIS)

HP CALCULATION: Max HP = hit die max + CON modifier + (level-1) x (avg hit die + CON modifier)
AC (unarmored): 10 + DEX modifier (unless class feature changes this)
Initiative: DEX modifier
Spell Save DC: 8 + proficiency bonus + spellcasting ability modifier
Spell Attack: proficiency bonus + spellcasting ability modifier
`

const npcPrompt = `You are a D&D 5e expert. Generate a complete NPC/monster stat block from a description.
You MUST respond with ONLY valid JSON - no markdown, no explanation, just the JSON object.

%s

Generate a stat block following these exact D&D 5e rules:
- HP = hit die max + CON mod + (level-1) x (avg hit die + CON mod)
- AC = 10 + DEX mod if unarmored, or appropriate armor
- Proficiency bonus based on CR/level (1-4=+2, 5-8=+3, 9-12=+4, 13-16=+5, 17-20=+6)
- All 6 ability scores (reasonable for the creature type, 3-20 range for humanoids, up to 30 for powerful monsters)

Return exactly this JSON structure:
{
  "name": "string",
  "race": "string (creature type: Humanoid, Undead, Beast, etc)",
  "char_class": "string (Fighter/Rogue/Wizard etc or Monster Type)",
  "level": number,
  "alignment": "string",
  "strength": number,
  "dexterity": number,
  "constitution": number,
  "intelligence": number,
  "wisdom": number,
  "charisma": number,
  "armor_class": number,
  "max_hp": number,
  "speed": number,
  "notes": "string (special abilities, attacks, traits - be specific with dice notation)",
  "reasoning": "string (brief explanation of stat choices)"
}

NPC Description: %s`

// stepPrompt builds the chat messages for a wizard step. Unknown steps fall
// back to the general prompt.
func stepPrompt(step string, build BuildContext, userMessage string) []ollama.Message {
	summary := build.summary()

	var system string
	switch step {
	case "race":
		system = fmt.Sprintf(`You are a D&D 5e expert DM helping a player choose their RACE.
Current build: %s
Explain the chosen race's traits and ability bonuses. Tell the player how this race synergizes (or doesn't) with any class they've mentioned.
Be specific: give exact bonuses, traits, and how they affect gameplay. Keep it under 120 words. End with one focused question or recommendation.`, summary)
	case "class":
		system = fmt.Sprintf(`You are a D&D 5e expert DM helping a player choose their CLASS.
Current build: %s
Explain the chosen class's role, hit die, primary ability, saving throws, and key level 1-2 features.
Tell them what ability scores to prioritize given their race choice. Keep it under 150 words. End with a specific tip about their combination.`, summary)
	case "background":
		system = fmt.Sprintf(`You are a D&D 5e expert DM helping a player choose their BACKGROUND.
Current build: %s
Explain the background's skill proficiencies and feature. Tell them how it fits their race+class combo narratively and mechanically.
Keep it under 100 words.`, summary)
	case "abilities":
		system = fmt.Sprintf(`You are a D&D 5e expert DM helping a player assign ABILITY SCORES.
Current build: %s
%s
Given their race and class, recommend exactly how to assign the standard array (15,14,13,12,10,8) to their six stats.
Be specific: "Put 15 in STR, 14 in CON..." etc. Explain why each placement matters for their class. Under 150 words.`, summary, srdSummary)
	case "personality":
		system = fmt.Sprintf(`You are a D&D 5e expert DM helping a player define their CHARACTER PERSONALITY.
Current build: %s
Help them write a Personality Trait, Ideal, Bond, and Flaw that fit their race/class/background combo.
Give concrete suggestions - don't be vague. Under 120 words.`, summary)
	default:
		system = fmt.Sprintf(`You are a D&D 5e expert DM helping a player build their character.
Current build: %s
%s
Answer the player's question accurately using SRD 5e rules only. Be specific and concise. Under 150 words.`, summary, srdSummary)
	}

	return []ollama.Message{
		{Role: "system", Content: system + "\n\n" + srdSummary},
		{Role: "user", Content: userMessage},
	}
}

func (b BuildContext) summary() string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}
	add("Name", b.Name)
	add("Race", b.Race)
	add("Class", b.Class)
	add("Background", b.Background)
	if b.Level > 0 {
		parts = append(parts, fmt.Sprintf("Level: %d", b.Level))
	}
	scores := []struct {
		label string
		value int
	}{
		{"STR", b.Strength},
		{"DEX", b.Dexterity},
		{"CON", b.Constitution},
		{"INT", b.Intelligence},
		{"WIS", b.Wisdom},
		{"CHA", b.Charisma},
	}
	for _, s := range scores {
		if s.value > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", s.label, s.value))
		}
	}
	if len(parts) == 0 {
		return "Just starting out"
	}
	return strings.Join(parts, ", ")
}
