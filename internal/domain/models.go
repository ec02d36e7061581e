package domain

import "encoding/json"

// ChampionEntry is one row of the wiki's champion roster table.
type ChampionEntry struct {
	Name             string `json:"name"`
	LastChangedPatch string `json:"last_changed_patch"`
	StatsURL         string `json:"stats_url"`
}

// ChampionStats holds the base statistics read from a champion's stat
// infobox. Values are kept as the wiki's display strings; the page mixes
// plain numbers, percentages and "N/A" and we never do arithmetic on them.
// Absent fields stay empty and are omitted from the serialized record.
type ChampionStats struct {
	Name string `json:"name"`

	HealthBase          string `json:"health_base,omitempty"`
	HealthGrowth        string `json:"health_growth,omitempty"`
	ResourceName        string `json:"resource_name,omitempty"`
	ResourceBase        string `json:"resource_base,omitempty"`
	ResourceGrowth      string `json:"resource_growth,omitempty"`
	HealthRegenBase     string `json:"health_regen_base,omitempty"`
	HealthRegenGrowth   string `json:"health_regen_growth,omitempty"`
	ResourceRegenBase   string `json:"resource_regen_base,omitempty"`
	ResourceRegenGrowth string `json:"resource_regen_growth,omitempty"`
	ArmorBase           string `json:"armor_base,omitempty"`
	ArmorGrowth         string `json:"armor_growth,omitempty"`
	AttackBase          string `json:"attack_base,omitempty"`
	AttackGrowth        string `json:"attack_growth,omitempty"`
	MagicResistBase     string `json:"magic_resist_base,omitempty"`
	MagicResistGrowth   string `json:"magic_resist_growth,omitempty"`
	CritDamagePct       string `json:"crit_damage_percentage,omitempty"`
	MovementSpeed       string `json:"movement_speed,omitempty"`
	AttackRange         string `json:"attack_range,omitempty"`
	AttackSpeedBase     string `json:"attack_speed_base,omitempty"`
	AttackWindupPct     string `json:"attack_windup_percentage,omitempty"`
	AttackSpeedRatio    string `json:"attack_speed_ratio,omitempty"`
	AttackSpeedBonusPct string `json:"attack_speed_bonus_percentage,omitempty"`
	MissileSpeed        string `json:"missile_speed,omitempty"`
	GameplayRadius      string `json:"gameplay_radius,omitempty"`
	SelectionRadius     string `json:"selection_radius,omitempty"`
	PathingRadius       string `json:"pathing_radius,omitempty"`
	AcquisitionRadius   string `json:"acquisition_radius,omitempty"`

	ARAMDamageDealtPct   string `json:"aram_damage_dealt_bonus_percentage,omitempty"`
	ARAMDamageTakenPct   string `json:"aram_damage_taken_bonus_percentage,omitempty"`
	ARAMAttackSpeedPct   string `json:"aram_attack_speed_bonus_percentage,omitempty"`
	ARAMAbilityHaste     string `json:"aram_ability_haste_bonus,omitempty"`
	ARAMEnergyRegenPct   string `json:"aram_energy_regen_bonus_percentage,omitempty"`
	ARAMHealingPct       string `json:"aram_healing_bonus_percentage,omitempty"`
	ARAMShieldingPct     string `json:"aram_shielding_bonus_percentage,omitempty"`
	ARAMTenacityBonusPct string `json:"aram_tenacity_bonus_percentage,omitempty"`
}

// Champion pairs a roster entry with the stats scraped from its page.
type Champion struct {
	Entry ChampionEntry `json:"listing_result"`
	Stats ChampionStats `json:"details"`
}

// Marshal serializes the champion records for upload. Field order follows
// struct declaration order, so the same input always yields identical bytes.
func Marshal(champions []Champion) ([]byte, error) {
	return json.MarshalIndent(champions, "", "  ")
}

// Unmarshal is the inverse of Marshal.
func Unmarshal(data []byte) ([]Champion, error) {
	var champions []Champion
	if err := json.Unmarshal(data, &champions); err != nil {
		return nil, err
	}
	return champions, nil
}
