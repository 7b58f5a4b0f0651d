// Package compliance judges routed document text against regulatory
// thresholds and required-disclosure checklists.
package compliance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/arden-env/esia-reconcile/internal/model"
)

// approachingFraction of a ceiling is where a compliant value starts to
// warrant attention.
const approachingFraction = 0.8

// probe is one compiled (category, parameter) extractor.
type probe struct {
	category  string
	parameter string
	patterns  []*regexp.Regexp
}

// extract returns the first parseable captured number, trying the patterns
// in order. A pattern without a capture group can never yield a value.
func (p probe) extract(text string) (float64, bool) {
	for _, re := range p.patterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		val, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			zap.L().Warn("compliance: probe captured an unparseable number",
				zap.String("parameter", p.parameter),
				zap.String("captured", m[1]))
			continue
		}
		return val, true
	}
	return 0, false
}

// Validator pulls declared parameter values out of fragments and judges
// them against threshold specs. Build once, use from any goroutine.
type Validator struct {
	probes []probe
	specs  map[string]model.ThresholdSpec
}

// NewValidator compiles the probe patterns and indexes the specs by
// (category, parameter). Probes match case-insensitively. A probe without
// a spec is allowed and simply never reports; a spec without any bound is
// a configuration error.
func NewValidator(probes []model.ThresholdProbe, specs []model.ThresholdSpec) (*Validator, error) {
	v := &Validator{specs: make(map[string]model.ThresholdSpec, len(specs))}
	for i, p := range probes {
		if err := model.ValidateStruct(p); err != nil {
			return nil, eris.Wrapf(err, "compliance: invalid probe %d (%s/%s)", i, p.Category, p.Parameter)
		}
		cp := probe{category: p.Category, parameter: p.Parameter}
		for _, pattern := range p.Patterns {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, eris.Wrapf(err, "compliance: probe %s/%s pattern %q", p.Category, p.Parameter, pattern)
			}
			cp.patterns = append(cp.patterns, re)
		}
		v.probes = append(v.probes, cp)
	}
	for i, s := range specs {
		if err := model.ValidateStruct(s); err != nil {
			return nil, eris.Wrapf(err, "compliance: invalid spec %d (%s/%s)", i, s.Category, s.Parameter)
		}
		if !s.HasBound() {
			return nil, eris.Errorf("compliance: spec %s/%s has no bound", s.Category, s.Parameter)
		}
		key := specKey(s.Category, s.Parameter)
		if _, dup := v.specs[key]; dup {
			return nil, eris.Errorf("compliance: duplicate spec %s/%s", s.Category, s.Parameter)
		}
		v.specs[key] = s
	}
	return v, nil
}

// Check probes every fragment for declared parameter values and judges
// each against its spec. A fragment that states no probed parameter stays
// silent, and so does a probed value with no spec; there is no UNKNOWN
// outcome.
func (v *Validator) Check(fragments []model.Fragment) []model.ThresholdCheckResult {
	var results []model.ThresholdCheckResult
	for _, frag := range fragments {
		for _, p := range v.probes {
			value, ok := p.extract(frag.Text)
			if !ok {
				continue
			}
			spec, ok := v.specs[specKey(p.category, p.parameter)]
			if !ok {
				zap.L().Debug("compliance: probed parameter has no spec",
					zap.String("category", p.category),
					zap.String("parameter", p.parameter))
				continue
			}
			results = append(results, judge(spec, p, value, frag.Location))
		}
	}
	return results
}

// judge compares a probed value against its spec. A min/max range flags
// any value outside it; a ceiling flags values above it and warns from
// approachingFraction of it upward.
func judge(spec model.ThresholdSpec, p probe, value float64, location string) model.ThresholdCheckResult {
	res := model.ThresholdCheckResult{
		Parameter: p.parameter,
		Category:  p.category,
		Value:     value,
		Unit:      spec.Unit,
		Status:    model.StatusCompliant,
		Location:  location,
	}
	if spec.Min != nil || spec.Max != nil {
		if spec.Max != nil {
			res.Threshold = *spec.Max
		} else {
			res.Threshold = *spec.Min
		}
		if spec.Min != nil && value < *spec.Min {
			res.Threshold = *spec.Min
			res.Status = model.StatusExceedance
		}
		if spec.Max != nil && value > *spec.Max {
			res.Threshold = *spec.Max
			res.Status = model.StatusExceedance
		}
		return res
	}

	ceiling := *spec.Value
	res.Threshold = ceiling
	switch {
	case value > ceiling:
		res.Status = model.StatusExceedance
	case value >= approachingFraction*ceiling:
		res.Status = model.StatusApproaching
	}
	return res
}

func specKey(category, parameter string) string {
	return strings.ToLower(category) + "|" + strings.ToLower(parameter)
}
