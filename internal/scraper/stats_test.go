package scraper

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/user/champion-scraper/internal/domain"
	"go.uber.org/zap"
)

const statsFixture = `
<div class="lvlselect">
  <aside>
    <div data-source="health"><span>Health</span> <span>650</span> <span>(+ 104)</span></div>
    <div data-source="resource"><span>Mana</span> <span>418</span> <span>(+ 25)</span></div>
    <div data-source="health regen"><span>Health regen. (per 5s)</span> <span>2.5</span> <span>(+ 0.55)</span></div>
    <div data-source="resource regen"><span>Mana regen. (per 5s)</span> <span>8</span> <span>(+ 0.8)</span></div>
    <div data-source="armor"><span>Armor</span> <span>21</span> <span>(+ 4.7)</span></div>
    <div data-source="attack damage"><span>Attack damage</span> <span>53</span> <span>(+ 3)</span></div>
    <div data-source="mr"><span>Magic resist.</span> <span>30</span> <span>(+ 1.3)</span></div>
    <div data-source="critical damage"><span>Crit. damage</span> <span>175%</span></div>
    <div data-source="ms"><span>Move. speed</span> <span>330</span></div>
    <div data-source="range"><span>Attack range</span> <span>550</span></div>
    <div data-source="attack speed"><span>Base AS</span> <span>0.668</span></div>
    <div data-source="windup"><span>Attack windup</span> <span>20%</span></div>
    <div data-source="as ratio"><span>AS ratio</span> <span>0.625</span></div>
    <div data-source="missile speed"><span>Missile speed</span> <span>1750</span></div>
    <div data-source="gameplay radius"><span>Gameplay radius</span> <span>65</span></div>
    <div data-source="selection radius"><span>Selection radius</span> <span>100</span></div>
    <div data-source="pathing radius 2"><span>Pathing radius</span> <span>35</span></div>
    <div data-source="acquisition radius"><span>Acq. radius</span> <span>800</span></div>
    <div data-source="aram-dmg-dealt"><span>Damage Dealt</span> <span>+10%</span></div>
    <div data-source="aram-dmg-taken"><span>Damage Received</span> <span>-5%</span></div>
    <div data-source="aram-healing"><span>Healing</span> <span>+20%</span></div>
    <div data-source="urf-dmg-dealt"><span>Damage Dealt</span> <span>+25%</span></div>
  </aside>
</div>`

func TestParseChampionStats(t *testing.T) {
	stats, err := ParseChampionStats("Ahri", statsFixture, zap.NewNop())
	require.NoError(t, err)

	require.Equal(t, domain.ChampionStats{
		Name:                "Ahri",
		HealthBase:          "650",
		HealthGrowth:        "104",
		ResourceName:        "Mana",
		ResourceBase:        "418",
		ResourceGrowth:      "25",
		HealthRegenBase:     "2.5",
		HealthRegenGrowth:   "0.55",
		ResourceRegenBase:   "8",
		ResourceRegenGrowth: "0.8",
		ArmorBase:           "21",
		ArmorGrowth:         "4.7",
		AttackBase:          "53",
		AttackGrowth:        "3",
		MagicResistBase:     "30",
		MagicResistGrowth:   "1.3",
		CritDamagePct:       "175",
		MovementSpeed:       "330",
		AttackRange:         "550",
		AttackSpeedBase:     "0.668",
		AttackWindupPct:     "20",
		AttackSpeedRatio:    "0.625",
		MissileSpeed:        "1750",
		GameplayRadius:      "65",
		SelectionRadius:     "100",
		PathingRadius:       "35",
		AcquisitionRadius:   "800",
		ARAMDamageDealtPct:  "+10",
		ARAMDamageTakenPct:  "-5",
		ARAMHealingPct:      "+20",
	}, stats)
}

func TestParseChampionStatsDeterministic(t *testing.T) {
	first, err := ParseChampionStats("Ahri", statsFixture, zap.NewNop())
	require.NoError(t, err)
	second, err := ParseChampionStats("Ahri", statsFixture, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseChampionStatsMinimal(t *testing.T) {
	fixture := `<div class="lvlselect"><aside>
	  <div data-source="health"><span>Health</span> <span>100</span></div>
	  <div data-source="attack damage"><span>Attack damage</span> <span>10</span></div>
	</aside></div>`

	stats, err := ParseChampionStats("Dummy", fixture, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, domain.ChampionStats{
		Name:       "Dummy",
		HealthBase: "100",
		AttackBase: "10",
	}, stats)
}

func TestParseChampionStatsEmpty(t *testing.T) {
	_, err := ParseChampionStats("Ghost", `<div class="lvlselect"><aside></aside></div>`, zap.NewNop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no stat cells")
}

func TestParseChampionStatsResourceless(t *testing.T) {
	fixture := `<div class="lvlselect"><aside>
	  <div data-source="resource"><span>Resource</span> <span>N/A</span></div>
	  <div data-source="resource regen"><span>Resource regen.</span> <span>N/A</span></div>
	</aside></div>`

	stats, err := ParseChampionStats("Garen", fixture, zap.NewNop())
	require.NoError(t, err)
	require.Empty(t, stats.ResourceName)
	require.Empty(t, stats.ResourceBase)
	require.Empty(t, stats.ResourceRegenBase)
}

func TestStatRegexes(t *testing.T) {
	cases := []struct {
		name string
		re   *regexp.Regexp
		text string
		want map[string]string
	}{
		{"health with growth", healthRe, "Health 650 (+ 104)", map[string]string{"base": "650", "growth": "104"}},
		{"health flat", healthRe, "Health 650", map[string]string{"base": "650", "growth": ""}},
		{"mana resource", resourceRe, "Mana 418 (+ 25)", map[string]string{"name": "Mana", "base": "418", "growth": "25"}},
		{"energy regen", resourceRegenRe, "Energy regen. (per 5s) 50", map[string]string{"base": "50", "growth": ""}},
		{"crit damage", critDamageRe, "Crit. damage 175%", map[string]string{"pct": "175"}},
		{"bonus as", bonusASRe, "Bonus AS 2.5 %", map[string]string{"pct": "2.5"}},
		{"aram tenacity", aramTenacityRe, "Tenacity & Slow Resist +20%", map[string]string{"pct": "+20"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := match(tc.re, tc.text)
			require.NotNil(t, got)
			for k, v := range tc.want {
				require.Equal(t, v, got[k], "group %q", k)
			}
		})
	}
}

func TestCellTextJoinsNodes(t *testing.T) {
	fixture := `<div class="lvlselect"><aside>
	  <div data-source="health"><span>Health</span><b>575</b> <small>(+ 90)</small></div>
	</aside></div>`

	stats, err := ParseChampionStats("Nested", fixture, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "575", stats.HealthBase)
	require.Equal(t, "90", stats.HealthGrowth)
}
