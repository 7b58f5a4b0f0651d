package cluster

import (
	"fmt"
	"strconv"

	"github.com/arden-env/esia-reconcile/internal/model"
)

// DefaultTolerance is the relative spread below which values are treated
// as restatements of the same number.
const DefaultTolerance = 0.02

// Detector compares the usable values of a cluster against a relative
// tolerance. Safe for concurrent use.
type Detector struct {
	tolerance float64
}

// NewDetector builds a detector; a non-positive tolerance falls back to
// DefaultTolerance.
func NewDetector(tolerance float64) *Detector {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Detector{tolerance: tolerance}
}

// DetectValues reports whether a value set disagrees beyond tolerance and
// describes how. Values of zero or below are unusable: upstream does not
// distinguish a true zero from a never-set default, so they are excluded
// rather than guessed at. Spreads whose max/min ratio sits strictly
// inside (9, 11) are flagged as a suspected x10 transcription error.
func (d *Detector) DetectValues(values []float64) (bool, string) {
	var usable []float64
	for _, v := range values {
		if v > 0 {
			usable = append(usable, v)
		}
	}
	if len(usable) <= 1 {
		return false, ""
	}

	low, high := usable[0], usable[0]
	for _, v := range usable[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	// A non-positive minimum leaves the relative spread undefined.
	if low <= 0 {
		return false, ""
	}

	rel := (high - low) / low
	if rel <= d.tolerance {
		return false, ""
	}

	ratio := high / low
	// ratio is at least 1 here, so only the upper band can fire.
	if (ratio > 9 && ratio < 11) || (ratio > 0.09 && ratio < 0.11) {
		return true, fmt.Sprintf("suspected x10 transcription error: values range from %s to %s",
			formatValue(low), formatValue(high))
	}
	return true, fmt.Sprintf("values range from %s to %s (%.1f%% apart)",
		formatValue(low), formatValue(high), rel*100)
}

// Annotate fills a cluster's min/max and conflict fields in place.
func (d *Detector) Annotate(c *model.FactCluster) {
	usable := c.UsableValues()
	if len(usable) > 0 {
		low, high := usable[0], usable[0]
		for _, v := range usable[1:] {
			if v < low {
				low = v
			}
			if v > high {
				high = v
			}
		}
		c.MinValue, c.MaxValue = low, high
	}
	c.HasConflict, c.ConflictDescription = d.DetectValues(usable)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
