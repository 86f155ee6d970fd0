package catalog

import (
	"sort"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

// EffectIDs is the fixed set of potion effect identifiers the plugin
// understands. Existing recipe files depend on these exact spellings.
var EffectIDs = []string{
	"ABSORPTION",
	"BAD_OMEN",
	"BLINDNESS",
	"CONDUIT_POWER",
	"DARKNESS",
	"DOLPHINS_GRACE",
	"FIRE_RESISTANCE",
	"GLOWING",
	"HASTE",
	"HEALTH_BOOST",
	"HERO_OF_THE_VILLAGE",
	"HUNGER",
	"INFESTED",
	"INSTANT_DAMAGE",
	"INSTANT_HEALTH",
	"INVISIBILITY",
	"JUMP_BOOST",
	"LEVITATION",
	"LUCK",
	"MINING_FATIGUE",
	"NAUSEA",
	"NIGHT_VISION",
	"OOZING",
	"POISON",
	"RAID_OMEN",
	"REGENERATION",
	"RESISTANCE",
	"SATURATION",
	"SLOW_FALLING",
	"SLOWNESS",
	"SPEED",
	"STRENGTH",
	"TRIAL_OMEN",
	"UNLUCK",
	"WATER_BREATHING",
	"WEAKNESS",
	"WEAVING",
	"WIND_CHARGED",
	"WITHER",
}

// effectAliases maps a language tag to localized effect names.
var effectAliases = map[string]map[string]string{
	"zh-CN": {
		"ABSORPTION":          "伤害吸收",
		"BAD_OMEN":            "不祥之兆",
		"BLINDNESS":           "失明",
		"CONDUIT_POWER":       "潮涌能量",
		"DARKNESS":            "黑暗",
		"DOLPHINS_GRACE":      "海豚的恩惠",
		"FIRE_RESISTANCE":     "防火",
		"GLOWING":             "发光",
		"HASTE":               "急迫",
		"HEALTH_BOOST":        "生命提升",
		"HERO_OF_THE_VILLAGE": "村庄英雄",
		"HUNGER":              "饥饿",
		"INFESTED":            "虫蚀",
		"INSTANT_DAMAGE":      "瞬间伤害",
		"INSTANT_HEALTH":      "瞬间治疗",
		"INVISIBILITY":        "隐身",
		"JUMP_BOOST":          "跳跃提升",
		"LEVITATION":          "飘浮",
		"LUCK":                "幸运",
		"MINING_FATIGUE":      "挖掘疲劳",
		"NAUSEA":              "反胃",
		"NIGHT_VISION":        "夜视",
		"OOZING":              "渗出",
		"POISON":              "中毒",
		"RAID_OMEN":           "袭击征兆",
		"REGENERATION":        "生命恢复",
		"RESISTANCE":          "抗性提升",
		"SATURATION":          "饱和",
		"SLOW_FALLING":        "缓降",
		"SLOWNESS":            "缓慢",
		"SPEED":               "速度",
		"STRENGTH":            "力量",
		"TRIAL_OMEN":          "试炼征兆",
		"UNLUCK":              "霉运",
		"WATER_BREATHING":     "水下呼吸",
		"WEAKNESS":            "虚弱",
		"WEAVING":             "织网",
		"WIND_CHARGED":        "风袭",
		"WITHER":              "凋零",
	},
}

// EffectLanguages lists the alias tables available besides plain IDs.
func EffectLanguages() []string {
	out := make([]string, 0, len(effectAliases))
	for lang := range effectAliases {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// NewEffectIndex returns the built-in effect catalog. Entry IDs and display
// names are the effect identifiers; lang picks an alias table that is
// searched too. Unknown languages (including "en") get no aliases.
func NewEffectIndex(lang string) *Index {
	aliases := effectAliases[lang]
	entries := make([]domain.CatalogEntry, len(EffectIDs))
	for i, id := range EffectIDs {
		entries[i] = domain.CatalogEntry{
			ID:          id,
			DisplayName: id,
			Alias:       aliases[id],
		}
	}
	return NewIndex(entries)
}
