package units

import "github.com/arden-env/esia-reconcile/internal/model"

// DefaultConversions is the built-in alias table covering the unit families
// that appear in impact assessments. Order is load-bearing for the substring
// fallback: compound and long spellings come before the short aliases they
// contain (km2 before m2, mwh before mw, kg before g), and emission aliases
// come before plain mass so "tonnes CO2e" never normalizes to kilograms.
func DefaultConversions() []model.UnitConversion {
	return []model.UnitConversion{
		// concentration, air then water
		{Alias: "µg/m³", BaseUnit: "µg/m3", Factor: 1},
		{Alias: "μg/m³", BaseUnit: "µg/m3", Factor: 1},
		{Alias: "µg/m3", BaseUnit: "µg/m3", Factor: 1},
		{Alias: "μg/m3", BaseUnit: "µg/m3", Factor: 1},
		{Alias: "ug/m3", BaseUnit: "µg/m3", Factor: 1},
		{Alias: "mg/nm³", BaseUnit: "µg/m3", Factor: 1000},
		{Alias: "mg/nm3", BaseUnit: "µg/m3", Factor: 1000},
		{Alias: "mg/m³", BaseUnit: "µg/m3", Factor: 1000},
		{Alias: "mg/m3", BaseUnit: "µg/m3", Factor: 1000},
		{Alias: "µg/l", BaseUnit: "mg/l", Factor: 0.001},
		{Alias: "μg/l", BaseUnit: "mg/l", Factor: 0.001},
		{Alias: "ug/l", BaseUnit: "mg/l", Factor: 0.001},
		{Alias: "mg/l", BaseUnit: "mg/l", Factor: 1},
		{Alias: "ppm", BaseUnit: "ppm", Factor: 1},
		{Alias: "ppb", BaseUnit: "ppm", Factor: 0.001},
		// noise
		{Alias: "db(a)", BaseUnit: "dB", Factor: 1},
		{Alias: "db (a)", BaseUnit: "dB", Factor: 1},
		{Alias: "dba", BaseUnit: "dB", Factor: 1},
		{Alias: "db", BaseUnit: "dB", Factor: 1},
		// greenhouse gas emissions, before plain mass
		{Alias: "mtco2e", BaseUnit: "t CO2e", Factor: 1e6},
		{Alias: "ktco2e", BaseUnit: "t CO2e", Factor: 1000},
		{Alias: "tonnes co2e", BaseUnit: "t CO2e", Factor: 1},
		{Alias: "tonnes co2", BaseUnit: "t CO2e", Factor: 1},
		{Alias: "t co2e", BaseUnit: "t CO2e", Factor: 1},
		{Alias: "tco2e", BaseUnit: "t CO2e", Factor: 1},
		{Alias: "tco2", BaseUnit: "t CO2e", Factor: 1},
		// area
		{Alias: "km²", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "sq km", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "sq. km", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "square kilometres", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "square kilometers", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "km2", BaseUnit: "sq m", Factor: 1e6},
		{Alias: "hectares", BaseUnit: "sq m", Factor: 10000},
		{Alias: "hectare", BaseUnit: "sq m", Factor: 10000},
		{Alias: "ha", BaseUnit: "sq m", Factor: 10000},
		{Alias: "sq m", BaseUnit: "sq m", Factor: 1},
		{Alias: "sq. m", BaseUnit: "sq m", Factor: 1},
		{Alias: "square metres", BaseUnit: "sq m", Factor: 1},
		{Alias: "square meters", BaseUnit: "sq m", Factor: 1},
		{Alias: "m²", BaseUnit: "sq m", Factor: 1},
		{Alias: "m2", BaseUnit: "sq m", Factor: 1},
		// volume
		{Alias: "megalitres", BaseUnit: "cu m", Factor: 1000},
		{Alias: "megalitre", BaseUnit: "cu m", Factor: 1000},
		{Alias: "cubic metres", BaseUnit: "cu m", Factor: 1},
		{Alias: "cubic meters", BaseUnit: "cu m", Factor: 1},
		{Alias: "m³", BaseUnit: "cu m", Factor: 1},
		{Alias: "m3", BaseUnit: "cu m", Factor: 1},
		{Alias: "litres", BaseUnit: "cu m", Factor: 0.001},
		{Alias: "litre", BaseUnit: "cu m", Factor: 0.001},
		{Alias: "liters", BaseUnit: "cu m", Factor: 0.001},
		{Alias: "liter", BaseUnit: "cu m", Factor: 0.001},
		// energy, then power
		{Alias: "gwh", BaseUnit: "kWh", Factor: 1e6},
		{Alias: "mwh", BaseUnit: "kWh", Factor: 1000},
		{Alias: "kwh", BaseUnit: "kWh", Factor: 1},
		{Alias: "mva", BaseUnit: "kVA", Factor: 1000},
		{Alias: "mw", BaseUnit: "kW", Factor: 1000},
		{Alias: "kw", BaseUnit: "kW", Factor: 1},
		// mass
		{Alias: "tonnes", BaseUnit: "kg", Factor: 1000},
		{Alias: "tonne", BaseUnit: "kg", Factor: 1000},
		{Alias: "kilograms", BaseUnit: "kg", Factor: 1},
		{Alias: "kilogram", BaseUnit: "kg", Factor: 1},
		{Alias: "kg", BaseUnit: "kg", Factor: 1},
		{Alias: "t", BaseUnit: "kg", Factor: 1000},
		{Alias: "g", BaseUnit: "kg", Factor: 0.001},
		// distance
		{Alias: "kilometres", BaseUnit: "m", Factor: 1000},
		{Alias: "kilometers", BaseUnit: "m", Factor: 1000},
		{Alias: "km", BaseUnit: "m", Factor: 1000},
		{Alias: "metres", BaseUnit: "m", Factor: 1},
		{Alias: "meters", BaseUnit: "m", Factor: 1},
		{Alias: "metre", BaseUnit: "m", Factor: 1},
		{Alias: "meter", BaseUnit: "m", Factor: 1},
		{Alias: "cm", BaseUnit: "m", Factor: 0.01},
		{Alias: "mm", BaseUnit: "m", Factor: 0.001},
		{Alias: "m", BaseUnit: "m", Factor: 1},
		// temperature and percentage carry no rescaling
		{Alias: "°c", BaseUnit: "deg C", Factor: 1},
		{Alias: "degrees celsius", BaseUnit: "deg C", Factor: 1},
		{Alias: "degrees c", BaseUnit: "deg C", Factor: 1},
		{Alias: "deg c", BaseUnit: "deg C", Factor: 1},
		{Alias: "%", BaseUnit: "%", Factor: 1},
		{Alias: "percent", BaseUnit: "%", Factor: 1},
		{Alias: "per cent", BaseUnit: "%", Factor: 1},
	}
}

// DefaultContexts is the built-in parameter context table. Trigger patterns
// are matched unanchored and case-insensitively; valid units list the raw
// spellings a parameter may legitimately be quoted in. An empty entry marks
// a parameter that is acceptable as a bare count.
func DefaultContexts() []model.ParameterContext {
	return []model.ParameterContext{
		{
			Name:       "project_area",
			Patterns:   []string{`study area`, `project (site|area|footprint)`, `concession`, `land ?take`, `area of influence`},
			ValidUnits: []string{"ha", "hectare", "hectares", "km2", "km²", "sq km", "sq m", "m2", "m²"},
		},
		{
			Name:       "buffer_distance",
			Patterns:   []string{`buffer`, `setback`, `distance (from|to)`, `corridor width`, `exclusion zone`},
			ValidUnits: []string{"m", "metre", "metres", "meters", "km", "kilometre", "kilometres", "kilometers"},
		},
		{
			Name:       "water_use",
			Patterns:   []string{`water (demand|use|usage|consumption|abstraction)`, `abstraction rate`, `raw water`},
			ValidUnits: []string{"m3", "m³", "m3/day", "m³/day", "m3/hr", "megalitre", "megalitres", "litres"},
		},
		{
			Name:       "effluent_quality",
			Patterns:   []string{`effluent`, `wastewater`, `discharge (quality|standard|limit)`},
			ValidUnits: []string{"mg/l", "µg/l", "ug/l", ""},
		},
		{
			Name:       "air_quality",
			Patterns:   []string{`air quality`, `ambient (air|concentration)`, `pm10`, `pm2\.5`, `particulate`, `dust (deposition|level)`},
			ValidUnits: []string{"µg/m3", "µg/m³", "ug/m3", "mg/m3", "mg/m³", "ppm", "ppb"},
		},
		{
			Name:       "stack_emissions",
			Patterns:   []string{`stack`, `flue gas`, `point source`},
			ValidUnits: []string{"mg/nm3", "mg/nm³", "mg/m3", "mg/m³"},
		},
		{
			Name:       "noise_level",
			Patterns:   []string{`noise`, `sound (pressure|level)`, `acoustic`, `leq`},
			ValidUnits: []string{"dB", "dBA", "dB(A)"},
		},
		{
			Name:       "ghg_emissions",
			Patterns:   []string{`greenhouse gas`, `ghg`, `carbon (footprint|emission)`, `co2`},
			ValidUnits: []string{"tCO2e", "t CO2e", "tonnes CO2e", "tonnes CO2", "ktCO2e", "MtCO2e"},
		},
		{
			Name:       "power_output",
			Patterns:   []string{`installed capacity`, `power (output|generation)`, `generating capacity`, `rated capacity`},
			ValidUnits: []string{"MW", "kW", "MVA", "GWh", "MWh", "kWh"},
		},
		{
			Name:       "workforce",
			Patterns:   []string{`workforce`, `workers?`, `employment`, `jobs`, `personnel`, `staff`},
			ValidUnits: []string{"", "people", "persons", "workers", "jobs", "employees"},
		},
		{
			Name:       "local_employment_share",
			Patterns:   []string{`local (employment|hiring|recruitment|content)`, `locally (recruited|hired|employed)`},
			ValidUnits: []string{"%", "percent", "per cent", ""},
		},
		{
			Name:       "temperature",
			Patterns:   []string{`temperature`, `thermal (plume|discharge)`},
			ValidUnits: []string{"°C", "deg C", "degrees C", "degrees Celsius"},
		},
		{
			Name:       "waste_volume",
			Patterns:   []string{`waste`, `spoil`, `overburden`, `tailings`},
			ValidUnits: []string{"tonnes", "tonne", "t", "kg", "m3", "m³"},
		},
		{
			Name:       "resettlement_count",
			Patterns:   []string{`resettl`, `displace`, `households affected`, `project[- ]affected (people|persons|households)`},
			ValidUnits: []string{"", "households", "people", "persons", "families"},
		},
	}
}
