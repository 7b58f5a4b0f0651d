package router

import "github.com/arden-env/esia-reconcile/internal/model"

// DefaultEntries returns the built-in routing table for the common
// assessment document structure. Section identifiers follow the usual
// chapter numbering of lender-format reports; sector entries carry the
// technology-specific checks and theme entries the cross-cutting ones.
func DefaultEntries() []model.RoutingEntry {
	return []model.RoutingEntry{
		{SectionID: "1.1", Title: "Project Overview and Justification",
			Keywords:      []string{"project", "overview", "justification", "rationale"},
			TargetDomains: []string{"project_description"}, Priority: model.PriorityMedium},
		{SectionID: "2.3", Title: "Project Footprint and Land Take",
			Keywords:      []string{"footprint", "land", "hectares", "acquisition"},
			TargetDomains: []string{"project_description", "resettlement_livelihoods"}, Priority: model.PriorityHigh},
		{Title: "Air Quality and Emissions",
			Keywords:      []string{"air", "emissions", "dust", "pm10", "pm2.5", "dispersion"},
			TargetDomains: []string{"air_quality"}, Priority: model.PriorityHigh},
		{Title: "Noise and Vibration",
			Keywords:      []string{"noise", "vibration", "acoustic", "decibel"},
			TargetDomains: []string{"noise_vibration"}, Priority: model.PriorityHigh},
		{Title: "Water Resources and Hydrology",
			Keywords:      []string{"water", "hydrology", "abstraction", "groundwater", "aquifer"},
			TargetDomains: []string{"water_resources"}, Priority: model.PriorityHigh},
		{Title: "Wastewater and Effluent Discharge",
			Keywords:      []string{"wastewater", "effluent", "discharge", "treatment"},
			TargetDomains: []string{"water_resources", "waste_management"}, Priority: model.PriorityHigh},
		{Title: "Waste and Hazardous Materials",
			Keywords:      []string{"waste", "hazardous", "landfill", "disposal"},
			TargetDomains: []string{"waste_management"}, Priority: model.PriorityMedium},
		{Title: "Biodiversity and Ecosystem Services",
			Keywords:      []string{"biodiversity", "habitat", "species", "flora", "fauna", "ecosystem"},
			TargetDomains: []string{"biodiversity"}, Priority: model.PriorityCritical},
		{Title: "Soils, Geology and Contamination",
			Keywords:      []string{"soil", "geology", "contamination", "erosion"},
			TargetDomains: []string{"soils_contamination"}, Priority: model.PriorityMedium},
		{Title: "Greenhouse Gas Emissions and Climate",
			Keywords:      []string{"greenhouse", "ghg", "co2e", "carbon", "climate"},
			TargetDomains: []string{"ghg_climate"}, Priority: model.PriorityHigh},
		{Title: "Gender-Based Violence and Exploitation Screening",
			Keywords:      []string{"gbvh", "seah", "gender", "violence", "harassment", "exploitation"},
			TargetDomains: []string{"social_risk"}, Priority: model.PriorityHigh},
		{Title: "Labor and Working Conditions",
			Keywords:      []string{"labor", "labour", "workers", "occupational", "ohs", "accommodation"},
			TargetDomains: []string{"labor_conditions"}, Priority: model.PriorityHigh},
		{Title: "Community Health, Safety and Security",
			Keywords:      []string{"community", "health", "safety", "security", "influx", "traffic"},
			TargetDomains: []string{"community_health_safety"}, Priority: model.PriorityCritical},
		{Title: "Land Acquisition and Resettlement",
			Keywords:      []string{"resettlement", "displacement", "compensation", "livelihood", "eviction"},
			TargetDomains: []string{"resettlement_livelihoods"}, Priority: model.PriorityCritical},
		{Title: "Cultural Heritage",
			Keywords:      []string{"heritage", "archaeological", "cultural", "sacred"},
			TargetDomains: []string{"cultural_heritage"}, Priority: model.PriorityMedium},
		{Title: "Stakeholder Engagement and Disclosure",
			Keywords:      []string{"stakeholder", "consultation", "engagement", "disclosure", "grievance"},
			TargetDomains: []string{"stakeholder_engagement"}, Priority: model.PriorityHigh},
		{Title: "Emergency Preparedness and Response",
			Keywords:      []string{"emergency", "spill", "contingency", "evacuation"},
			TargetDomains: []string{"emergency_response"}, Priority: model.PriorityMedium},

		// Sector-specific entries, matched only under the right hint.
		{Title: "Hydropower Flow and Reservoir Effects", Sector: "hydropower",
			Keywords:      []string{"reservoir", "flow", "dam", "impoundment", "fish", "sediment"},
			TargetDomains: []string{"water_resources", "biodiversity"}, Priority: model.PriorityHigh},
		{Title: "Wind Farm Collision and Shadow Flicker", Sector: "wind",
			Keywords:      []string{"turbine", "collision", "bats", "birds", "flicker", "blade"},
			TargetDomains: []string{"biodiversity", "noise_vibration"}, Priority: model.PriorityHigh},
		{Title: "Solar Facility Glint and Land Cover", Sector: "solar",
			Keywords:      []string{"solar", "photovoltaic", "glint", "glare", "panels"},
			TargetDomains: []string{"biodiversity", "project_description"}, Priority: model.PriorityMedium},
		{Title: "Transmission Line Corridors", Sector: "transmission",
			Keywords:      []string{"transmission", "corridor", "pylon", "electrocution", "clearance"},
			TargetDomains: []string{"biodiversity", "resettlement_livelihoods"}, Priority: model.PriorityMedium},

		// Cross-cutting theme entries, matched regardless of sector.
		{Title: "Cumulative Effects", Theme: "cumulative",
			Keywords:      []string{"cumulative", "induced", "regional"},
			TargetDomains: []string{"project_description"}, Priority: model.PriorityMedium},
		{Title: "Climate Resilience and Adaptation", Theme: "climate",
			Keywords:      []string{"climate", "resilience", "adaptation", "flood", "drought"},
			TargetDomains: []string{"ghg_climate"}, Priority: model.PriorityHigh},
		{Title: "Decommissioning and Closure", Theme: "lifecycle",
			Keywords:      []string{"decommissioning", "closure", "rehabilitation", "reinstatement"},
			TargetDomains: []string{"waste_management", "soils_contamination"}, Priority: model.PriorityMedium},
	}
}

// DefaultDomains returns the built-in review domain catalog. Subsection
// labels double as recognized short headings, so keep them close to how
// reports actually title these chapters.
func DefaultDomains() []Domain {
	return []Domain{
		{Name: "project_description", Subsections: []Subsection{
			{Label: "Project Description", Keywords: []string{"project", "description", "components"}},
			{Label: "Alternatives Analysis", Keywords: []string{"alternatives", "siting", "options"}},
		}},
		{Name: "air_quality", Subsections: []Subsection{
			{Label: "Air Quality", Keywords: []string{"air", "quality", "dust", "emissions"}},
			{Label: "Stack Emissions", Keywords: []string{"stack", "flue", "scrubber"}},
		}},
		{Name: "noise_vibration", Subsections: []Subsection{
			{Label: "Noise and Vibration", Keywords: []string{"noise", "vibration", "decibel", "acoustic"}},
		}},
		{Name: "water_resources", Subsections: []Subsection{
			{Label: "Water Resources", Keywords: []string{"water", "groundwater", "abstraction"}},
			{Label: "Effluent Discharge", Keywords: []string{"effluent", "discharge", "outfall"}},
		}},
		{Name: "waste_management", Subsections: []Subsection{
			{Label: "Waste", Keywords: []string{"waste", "hazardous", "disposal"}},
		}},
		{Name: "biodiversity", Subsections: []Subsection{
			{Label: "Biodiversity", Keywords: []string{"habitat", "species", "flora", "fauna"}},
			{Label: "Critical Habitat", Keywords: []string{"critical", "endangered", "iucn"}},
		}},
		{Name: "soils_contamination", Subsections: []Subsection{
			{Label: "Soils and Geology", Keywords: []string{"soil", "erosion", "contamination"}},
		}},
		{Name: "ghg_climate", Subsections: []Subsection{
			{Label: "Greenhouse Gases", Keywords: []string{"ghg", "carbon", "co2e"}},
			{Label: "Climate Risk", Keywords: []string{"climate", "flood", "drought"}},
		}},
		{Name: "social_risk", Subsections: []Subsection{
			{Label: "Gender-Based Violence", Keywords: []string{"gbvh", "seah", "violence", "harassment"}},
			{Label: "Vulnerable Groups", Keywords: []string{"vulnerable", "indigenous", "minorities"}},
		}},
		{Name: "labor_conditions", Subsections: []Subsection{
			{Label: "Labor and Working Conditions", Keywords: []string{"labor", "workers", "occupational"}},
			{Label: "Worker Accommodation", Keywords: []string{"accommodation", "camp", "dormitory"}},
		}},
		{Name: "community_health_safety", Subsections: []Subsection{
			{Label: "Community Health and Safety", Keywords: []string{"community", "health", "safety", "traffic"}},
		}},
		{Name: "resettlement_livelihoods", Subsections: []Subsection{
			{Label: "Resettlement", Keywords: []string{"resettlement", "displacement", "compensation"}},
			{Label: "Livelihood Restoration", Keywords: []string{"livelihood", "restoration", "income"}},
		}},
		{Name: "cultural_heritage", Subsections: []Subsection{
			{Label: "Cultural Heritage", Keywords: []string{"heritage", "archaeological", "sacred"}},
		}},
		{Name: "stakeholder_engagement", Subsections: []Subsection{
			{Label: "Stakeholder Engagement", Keywords: []string{"stakeholder", "consultation", "grievance"}},
		}},
		{Name: "emergency_response", Subsections: []Subsection{
			{Label: "Emergency Preparedness", Keywords: []string{"emergency", "spill", "evacuation"}},
		}},
	}
}

// DefaultLiterals returns the flat phrase dictionary the fuzzy fallback
// consults. Phrases are matched as substrings of the lowered heading.
func DefaultLiterals() []LiteralKeyword {
	return []LiteralKeyword{
		{Phrase: "grievance mechanism", Domain: "stakeholder_engagement"},
		{Phrase: "chance find", Domain: "cultural_heritage"},
		{Phrase: "fpic", Domain: "social_risk"},
		{Phrase: "free, prior and informed consent", Domain: "social_risk"},
		{Phrase: "child labor", Domain: "labor_conditions"},
		{Phrase: "forced labor", Domain: "labor_conditions"},
		{Phrase: "worker camp", Domain: "labor_conditions"},
		{Phrase: "natural habitat", Domain: "biodiversity"},
		{Phrase: "invasive species", Domain: "biodiversity"},
		{Phrase: "scope 1", Domain: "ghg_climate"},
		{Phrase: "scope 2", Domain: "ghg_climate"},
		{Phrase: "resettlement action plan", Domain: "resettlement_livelihoods"},
		{Phrase: "asbestos", Domain: "waste_management"},
		{Phrase: "unexploded ordnance", Domain: "emergency_response"},
	}
}

// DefaultSectorAliases maps the project type hints clients actually send to
// the sector buckets the routing table declares.
func DefaultSectorAliases() map[string]string {
	return map[string]string{
		"hydroelectric":   "hydropower",
		"run-of-river":    "hydropower",
		"onshore wind":    "wind",
		"offshore wind":   "wind",
		"wind farm":       "wind",
		"solar pv":        "solar",
		"photovoltaic":    "solar",
		"grid connection": "transmission",
		"power line":      "transmission",
	}
}
