package data

// ResonanceCombo is a named two-element combo.
// StatusEffect is "" (none), "stun", "freeze" or "silence".
type ResonanceCombo struct {
	Name           string
	First          string
	Second         string
	DamageBonus    float64 // fraction of base damage added on top
	StatusEffect   string
	StatusDuration int
	StatusChance   float64
}

// Matches reports whether both combo elements are present in elements.
func (c ResonanceCombo) Matches(elements []string) bool {
	return HasElement(elements, c.First) && HasElement(elements, c.Second)
}

// resonanceTable order is significant: lookups return the first match.
var resonanceTable = []ResonanceCombo{
	{Name: "Steam Burn", First: "fire", Second: "water", DamageBonus: 0.25},
	{Name: "Wildfire", First: "fire", Second: "wind", DamageBonus: 0.30},
	{Name: "Deep Freeze", First: "water", Second: "ice", DamageBonus: 0.20, StatusEffect: "freeze", StatusDuration: 2, StatusChance: 0.30},
	{Name: "Electrocute", First: "lightning", Second: "water", DamageBonus: 0.30, StatusEffect: "stun", StatusDuration: 1, StatusChance: 0.25},
	{Name: "Magma Surge", First: "earth", Second: "fire", DamageBonus: 0.35},
	{Name: "Thunderstorm", First: "wind", Second: "lightning", DamageBonus: 0.30, StatusEffect: "stun", StatusDuration: 1, StatusChance: 0.20},
	{Name: "Blizzard", First: "ice", Second: "wind", DamageBonus: 0.25, StatusEffect: "freeze", StatusDuration: 1, StatusChance: 0.25},
	{Name: "Overgrowth", First: "nature", Second: "water", DamageBonus: 0.20},
	{Name: "Eclipse", First: "light", Second: "dark", DamageBonus: 0.40, StatusEffect: "silence", StatusDuration: 2, StatusChance: 0.20},
	{Name: "Blight", First: "poison", Second: "nature", DamageBonus: 0.25},
	{Name: "Railgun", First: "metal", Second: "lightning", DamageBonus: 0.35},
	{Name: "Ironclad Quake", First: "earth", Second: "metal", DamageBonus: 0.25, StatusEffect: "stun", StatusDuration: 1, StatusChance: 0.15},
	{Name: "Mind Shatter", First: "psychic", Second: "sound", DamageBonus: 0.30, StatusEffect: "silence", StatusDuration: 2, StatusChance: 0.30},
	{Name: "Prism Ray", First: "crystal", Second: "light", DamageBonus: 0.30},
	{Name: "Singularity", First: "void", Second: "arcane", DamageBonus: 0.45, StatusEffect: "stun", StatusDuration: 1, StatusChance: 0.10},
	{Name: "Hemorrhage", First: "blood", Second: "dark", DamageBonus: 0.30},
	{Name: "Sanctified Soul", First: "spirit", Second: "light", DamageBonus: 0.25, StatusEffect: "silence", StatusDuration: 1, StatusChance: 0.20},
	{Name: "Glacial Shard", First: "ice", Second: "crystal", DamageBonus: 0.25, StatusEffect: "freeze", StatusDuration: 1, StatusChance: 0.20},
}

// ResonanceCombos returns a copy of the combo table in lookup order.
func ResonanceCombos() []ResonanceCombo {
	out := make([]ResonanceCombo, len(resonanceTable))
	copy(out, resonanceTable)
	return out
}
