package greeting

import "maps"

// MergeLanguages deep-merges overlay over base and returns a new map.
// Overlay phrases win on conflicting keys; neither input is modified.
// Locale keys are canonicalized so "en-us" merges into "en-US".
func MergeLanguages(base, overlay map[string]LanguageTable) map[string]LanguageTable {
	merged := make(map[string]LanguageTable, len(base)+len(overlay))
	for locale, table := range base {
		merged[canonicalOrRaw(locale)] = MergeTable(merged[canonicalOrRaw(locale)], table)
	}
	for locale, table := range overlay {
		key := canonicalOrRaw(locale)
		merged[key] = MergeTable(merged[key], table)
	}
	return merged
}

// MergeTable returns base with every phrase of overlay applied on top
func MergeTable(base, overlay LanguageTable) LanguageTable {
	return LanguageTable{
		TimeSlots: mergeMap(base.TimeSlots, overlay.TimeSlots),
		Weekdays:  mergeMap(base.Weekdays, overlay.Weekdays),
		Dates:     mergeMap(base.Dates, overlay.Dates),
	}
}

func mergeMap[K comparable](base, overlay map[K]string) map[K]string {
	out := make(map[K]string, len(base)+len(overlay))
	maps.Copy(out, base)
	maps.Copy(out, overlay)
	return out
}
