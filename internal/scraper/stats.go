package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/champion-scraper/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Stat cell text as rendered by the wiki, e.g. "Health 650 (+ 104)".
// The growth term is absent for flat stats.
var (
	healthRe        = regexp.MustCompile(`(?i)^Health (?P<base>[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	resourceRe      = regexp.MustCompile(`(?i)^(?P<name>[ a-zA-Z]+) (?P<base>N/A|[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	healthRegenRe   = regexp.MustCompile(`(?i)^Health regen\. \(per 5s\) (?P<base>[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	resourceRegenRe = regexp.MustCompile(`(?i)^[ a-zA-Z]* regen\.( \(per 5s\))? (?P<base>N/A|[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	armorRe         = regexp.MustCompile(`(?i)^Armor (?P<base>[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	attackRe        = regexp.MustCompile(`(?i)^Attack damage (?P<base>[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	magicResistRe   = regexp.MustCompile(`(?i)^Magic resist\. (?P<base>[\d.]+)( \(\+ (?P<growth>[\d.]+)\))?`)
	critDamageRe    = regexp.MustCompile(`(?i)^Crit\. damage (?P<pct>[\d.]+)%`)
	moveSpeedRe     = regexp.MustCompile(`(?i)^Move\. speed (?P<v>[\d.]+)`)
	attackRangeRe   = regexp.MustCompile(`(?i)^Attack range (?P<v>[\d.]+)`)
	attackSpeedRe   = regexp.MustCompile(`(?i)^Base AS (?P<v>[\d.]+)`)
	windupRe        = regexp.MustCompile(`(?i)^Attack windup (?P<pct>[\d.]+)%`)
	asRatioRe       = regexp.MustCompile(`(?i)^AS ratio (?P<v>[\d.]+)`)
	bonusASRe       = regexp.MustCompile(`(?i)^Bonus AS (?P<pct>[\d.]+) %`)
	missileSpeedRe  = regexp.MustCompile(`(?i)^Missile speed (?P<v>[\d.]+)`)
	gameplayRadRe   = regexp.MustCompile(`(?i)^Gameplay radius (?P<v>[\d.]+)`)
	selectionRadRe  = regexp.MustCompile(`(?i)^Selection radius (?P<v>[\d.]+)`)
	pathingRadRe    = regexp.MustCompile(`(?i)^Pathing radius (?P<v>[\d.]+)`)
	acquisitionRe   = regexp.MustCompile(`(?i)^Acq\. radius (?P<v>[\d.]+)`)

	aramDmgDealtRe  = regexp.MustCompile(`(?i)^Damage Dealt (?P<pct>[+\-][\d.]+)%`)
	aramDmgTakenRe  = regexp.MustCompile(`(?i)^Damage Received (?P<pct>[+\-][\d.]+)%`)
	aramASRe        = regexp.MustCompile(`(?i)^Total Attack Speed (?P<pct>[+\-][\d.]+)%`)
	aramHasteRe     = regexp.MustCompile(`(?i)^Ability Haste (?P<v>[+\-][\d.]+)`)
	aramEnergyRe    = regexp.MustCompile(`(?i)^Energy Regen (?P<pct>[+\-][\d.]+)%`)
	aramHealingRe   = regexp.MustCompile(`(?i)^Healing (?P<pct>[+\-][\d.]+)%`)
	aramShieldingRe = regexp.MustCompile(`(?i)^Shielding (?P<pct>[+\-][\d.]+)%`)
	aramTenacityRe  = regexp.MustCompile(`(?i)^Tenacity & Slow Resist (?P<pct>[+\-][\d.]+)%`)
)

// Cells for alternate game modes carry these data-source prefixes and are
// intentionally not collected.
var ignoredFieldPrefixes = []string{"nb-", "nb_", "ofa-", "ofa_", "urf-", "usb-", "usb_", "ar_"}

// ParseChampionStats reads the stat infobox HTML of a single champion page.
// Each stat lives in a div carrying a data-source attribute naming the field.
// Fields that fail their pattern are left empty; a page with no stat cells at
// all is an extraction error.
func ParseChampionStats(name, infoboxHTML string, logger *zap.Logger) (domain.ChampionStats, error) {
	stats := domain.ChampionStats{Name: name}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(infoboxHTML))
	if err != nil {
		return stats, fmt.Errorf("parse stat infobox for %s: %w", name, err)
	}

	cells := doc.Find("div[data-source]")
	if cells.Length() == 0 {
		return stats, fmt.Errorf("no stat cells found for %s", name)
	}

	cells.Each(func(_ int, sel *goquery.Selection) {
		field, _ := sel.Attr("data-source")
		text := cellText(sel)
		if text == "" {
			return
		}
		applyField(&stats, field, text, logger)
	})
	return stats, nil
}

func applyField(stats *domain.ChampionStats, field, text string, logger *zap.Logger) {
	switch field {
	case "health":
		if g := match(healthRe, text); g != nil {
			stats.HealthBase, stats.HealthGrowth = g["base"], g["growth"]
		}
	case "resource":
		if g := match(resourceRe, text); g != nil {
			// "Resource" is the placeholder for resourceless champions
			if name := g["name"]; name != "Resource" {
				stats.ResourceName = name
				stats.ResourceBase, stats.ResourceGrowth = g["base"], g["growth"]
			}
		}
	case "health regen":
		if g := match(healthRegenRe, text); g != nil {
			stats.HealthRegenBase, stats.HealthRegenGrowth = g["base"], g["growth"]
		}
	case "resource regen":
		if g := match(resourceRegenRe, text); g != nil {
			if base := g["base"]; base != "N/A" {
				stats.ResourceRegenBase, stats.ResourceRegenGrowth = base, g["growth"]
			}
		}
	case "armor":
		if g := match(armorRe, text); g != nil {
			stats.ArmorBase, stats.ArmorGrowth = g["base"], g["growth"]
		}
	case "attack damage":
		if g := match(attackRe, text); g != nil {
			stats.AttackBase, stats.AttackGrowth = g["base"], g["growth"]
		}
	case "mr":
		if g := match(magicResistRe, text); g != nil {
			stats.MagicResistBase, stats.MagicResistGrowth = g["base"], g["growth"]
		}
	case "critical damage":
		if g := match(critDamageRe, text); g != nil {
			stats.CritDamagePct = g["pct"]
		}
	case "ms":
		if g := match(moveSpeedRe, text); g != nil {
			stats.MovementSpeed = g["v"]
		}
	case "range":
		if g := match(attackRangeRe, text); g != nil {
			stats.AttackRange = g["v"]
		}
	case "attack speed":
		if g := match(attackSpeedRe, text); g != nil {
			stats.AttackSpeedBase = g["v"]
		}
	case "windup":
		if g := match(windupRe, text); g != nil {
			stats.AttackWindupPct = g["pct"]
		}
	case "as ratio":
		if g := match(asRatioRe, text); g != nil {
			stats.AttackSpeedRatio = g["v"]
		}
	case "bonus as":
		if g := match(bonusASRe, text); g != nil {
			stats.AttackSpeedBonusPct = g["pct"]
		}
	case "missile speed":
		if g := match(missileSpeedRe, text); g != nil {
			stats.MissileSpeed = g["v"]
		}
	case "gameplay radius":
		if g := match(gameplayRadRe, text); g != nil {
			stats.GameplayRadius = g["v"]
		}
	case "selection radius":
		if g := match(selectionRadRe, text); g != nil {
			stats.SelectionRadius = g["v"]
		}
	case "acquisition radius":
		if g := match(acquisitionRe, text); g != nil {
			stats.AcquisitionRadius = g["v"]
		}
	case "aram-dmg-dealt":
		if g := match(aramDmgDealtRe, text); g != nil {
			stats.ARAMDamageDealtPct = g["pct"]
		}
	case "aram-dmg-taken":
		if g := match(aramDmgTakenRe, text); g != nil {
			stats.ARAMDamageTakenPct = g["pct"]
		}
	case "aram_attack_speed":
		if g := match(aramASRe, text); g != nil {
			stats.ARAMAttackSpeedPct = g["pct"]
		}
	case "aram_ability_haste":
		if g := match(aramHasteRe, text); g != nil {
			stats.ARAMAbilityHaste = g["v"]
		}
	case "aram_energy_regen":
		if g := match(aramEnergyRe, text); g != nil {
			stats.ARAMEnergyRegenPct = g["pct"]
		}
	case "aram-healing":
		if g := match(aramHealingRe, text); g != nil {
			stats.ARAMHealingPct = g["pct"]
		}
	case "aram-shielding":
		if g := match(aramShieldingRe, text); g != nil {
			stats.ARAMShieldingPct = g["pct"]
		}
	case "aram_tenacity":
		if g := match(aramTenacityRe, text); g != nil {
			stats.ARAMTenacityBonusPct = g["pct"]
		}
	default:
		// "pathing radius" appears with varying suffixes across pages
		if strings.Contains(field, "pathing radius") {
			if g := match(pathingRadRe, text); g != nil {
				stats.PathingRadius = g["v"]
			}
			return
		}
		for _, prefix := range ignoredFieldPrefixes {
			if strings.HasPrefix(field, prefix) {
				return
			}
		}
		logger.Warn("unknown stat field",
			zap.String("champion", stats.Name),
			zap.String("field", field),
			zap.String("text", text))
	}
}

// match returns the named capture groups of the first match, or nil.
func match(re *regexp.Regexp, text string) map[string]string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	return groups
}

// cellText joins the trimmed text nodes under the cell with single spaces,
// so "<span>Health</span> <span>650</span>" reads as "Health 650" no matter
// how the markup nests.
func cellText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
