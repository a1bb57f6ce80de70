package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCatalog returns the built-in methodology catalog. Factors are hours
// per basis line, taken from commonly cited productivity figures; each entry
// carries its sources so the comparison table can link back to them.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Key:    "industry_average",
			Label:  "Industry average (10 LOC/hour)",
			Factor: 0.1,
			References: []string{
				"https://en.wikipedia.org/wiki/Source_lines_of_code",
			},
			Description: "Classic delivered-code figure averaged across design, coding, testing and documentation.",
		},
		{
			Key:    "cocomo_organic",
			Label:  "COCOMO organic mode",
			Factor: 0.055,
			References: []string{
				"https://en.wikipedia.org/wiki/COCOMO",
			},
			Description: "Boehm's organic-mode effort equation linearized for small deltas.",
		},
		{
			Key:    "focused_senior",
			Label:  "Focused senior developer",
			Factor: 0.02,
			References: []string{
				"https://en.wikipedia.org/wiki/Programming_productivity",
			},
			Description: "Experienced developer working in a familiar codebase with minimal interruptions.",
		},
		{
			Key:    "junior_onboarding",
			Label:  "Junior developer, new codebase",
			Factor: 0.15,
			References: []string{
				"https://en.wikipedia.org/wiki/Programming_productivity",
			},
			Description: "Includes reading time, review churn and rework typical of onboarding.",
		},
		{
			Key:    "maintenance_legacy",
			Label:  "Legacy maintenance work",
			Factor: 0.2,
			References: []string{
				"https://en.wikipedia.org/wiki/Software_maintenance",
			},
			Description: "Change effort dominated by comprehension and regression testing of old code.",
		},
		{
			Key:    "ai_assisted",
			Label:  "AI-assisted development",
			Factor: 0.01,
			References: []string{
				"https://en.wikipedia.org/wiki/GitHub_Copilot",
			},
			Description: "Optimistic upper bound with heavy assistant usage; review time still applies.",
		},
	}
}

// LoadCatalog reads a methodology catalog from a JSON file. The file must be
// a JSON array of entries. Entries missing a label or a positive factor are
// skipped one by one rather than failing the load; an empty result after
// filtering is an error so a fully malformed file cannot silently wipe the
// comparison table.
func LoadCatalog(path string) ([]CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file %q: %w", path, err)
	}

	var raw []CatalogEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse catalog file %q: %w", path, err)
	}

	entries := make([]CatalogEntry, 0, len(raw))
	for _, e := range raw {
		if e.Label == "" || e.Factor <= 0 {
			continue
		}
		if e.Key == "" {
			e.Key = e.Label
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog file %q has no usable entries", path)
	}
	return entries, nil
}
