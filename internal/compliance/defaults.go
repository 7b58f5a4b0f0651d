package compliance

import "github.com/arden-env/esia-reconcile/internal/model"

func f64(v float64) *float64 { return &v }

// DefaultProbes returns the built-in probes for the parameters assessment
// documents most often declare numerically. Patterns are ordered from the
// phrasing reports actually use down to looser fallbacks.
func DefaultProbes() []model.ThresholdProbe {
	return []model.ThresholdProbe{
		{Category: "noise", Parameter: "daytime_level", Patterns: []string{
			`day[- ]?time[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*db`,
			`during the day[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*db`,
		}},
		{Category: "noise", Parameter: "nighttime_level", Patterns: []string{
			`night[- ]?time[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*db`,
			`at night[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*db`,
		}},
		{Category: "air", Parameter: "pm10_24h", Patterns: []string{
			`pm[- ]?10[^\d]{0,60}?(\d[\d,]*(?:\.\d+)?)\s*[µu]g`,
		}},
		{Category: "air", Parameter: "pm2_5_24h", Patterns: []string{
			`pm[- ]?2\.5[^\d]{0,60}?(\d[\d,]*(?:\.\d+)?)\s*[µu]g`,
		}},
		{Category: "air", Parameter: "no2_1h", Patterns: []string{
			`no2[^\d]{0,60}?(\d[\d,]*(?:\.\d+)?)\s*[µu]g`,
			`nitrogen dioxide[^\d]{0,60}?(\d[\d,]*(?:\.\d+)?)\s*[µu]g`,
		}},
		{Category: "effluent", Parameter: "ph", Patterns: []string{
			`\bph\b[^\d]{0,30}?(\d+(?:\.\d+)?)`,
		}},
		{Category: "effluent", Parameter: "bod", Patterns: []string{
			`bod5?[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*mg/l`,
		}},
		{Category: "effluent", Parameter: "cod", Patterns: []string{
			`\bcod\b[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*mg/l`,
		}},
		{Category: "effluent", Parameter: "tss", Patterns: []string{
			`(?:\btss\b|total suspended solids)[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*mg/l`,
		}},
		{Category: "effluent", Parameter: "oil_grease", Patterns: []string{
			`oils? and grease[^\d]{0,50}?(\d[\d,]*(?:\.\d+)?)\s*mg/l`,
		}},
	}
}

// DefaultThresholds returns limits in the shape of the IFC EHS general
// guidelines: residential-receptor noise ceilings, ambient air ceilings,
// and sanitary effluent quality bounds.
func DefaultThresholds() []model.ThresholdSpec {
	return []model.ThresholdSpec{
		{Category: "noise", Parameter: "daytime_level", Unit: "dB(A)", Value: f64(55)},
		{Category: "noise", Parameter: "nighttime_level", Unit: "dB(A)", Value: f64(45)},
		{Category: "air", Parameter: "pm10_24h", Unit: "µg/m3", Value: f64(50)},
		{Category: "air", Parameter: "pm2_5_24h", Unit: "µg/m3", Value: f64(25)},
		{Category: "air", Parameter: "no2_1h", Unit: "µg/m3", Value: f64(200)},
		{Category: "effluent", Parameter: "ph", Min: f64(6), Max: f64(9)},
		{Category: "effluent", Parameter: "bod", Unit: "mg/l", Value: f64(30)},
		{Category: "effluent", Parameter: "cod", Unit: "mg/l", Value: f64(125)},
		{Category: "effluent", Parameter: "tss", Unit: "mg/l", Value: f64(50)},
		{Category: "effluent", Parameter: "oil_grease", Unit: "mg/l", Value: f64(10)},
	}
}

// DefaultChecklist returns the disclosures a complete assessment is
// expected to evidence somewhere. Patterns swallow up to a sentence of
// trailing context so the excerpt shows how the plan is referenced, not
// just that the phrase occurs.
func DefaultChecklist() []model.ChecklistItem {
	return []model.ChecklistItem{
		{SectionCategory: "social", Item: "grievance_mechanism",
			Pattern: `grievance (?:redress )?mechanism[^.\n]{0,120}`},
		{SectionCategory: "social", Item: "stakeholder_engagement_plan",
			Pattern: `stakeholder engagement plan[^.\n]{0,120}`},
		{SectionCategory: "social", Item: "resettlement_framework",
			Pattern: `resettlement (?:action plan|policy framework)[^.\n]{0,120}`},
		{SectionCategory: "environment", Item: "waste_management_plan",
			Pattern: `waste management plan[^.\n]{0,120}`},
		{SectionCategory: "environment", Item: "spill_response",
			Pattern: `spill (?:response|contingency)[^.\n]{0,120}`},
		{SectionCategory: "environment", Item: "biodiversity_management_plan",
			Pattern: `biodiversity (?:management|action) plan[^.\n]{0,120}`},
		{SectionCategory: "labor", Item: "worker_grievance",
			Pattern: `workers?(?:')? grievance[^.\n]{0,120}`},
		{SectionCategory: "labor", Item: "code_of_conduct",
			Pattern: `code of conduct[^.\n]{0,120}`},
		{SectionCategory: "health_safety", Item: "emergency_response_plan",
			Pattern: `emergency (?:response|preparedness) plan[^.\n]{0,120}`},
		{SectionCategory: "health_safety", Item: "traffic_management",
			Pattern: `traffic management plan[^.\n]{0,120}`},
	}
}

// DefaultPriorityCategories are the checklist categories whose gaps are
// graded high severity.
func DefaultPriorityCategories() []string {
	return []string{"social", "health_safety"}
}
