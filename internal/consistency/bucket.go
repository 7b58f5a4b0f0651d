// Package consistency cross-checks numeric agreement between document
// fragments. Quantities are bucketed by (parameter context, base unit);
// the checker compares normalized values inside a bucket, the
// standardizer compares the raw unit spellings.
package consistency

import (
	"strconv"

	"github.com/arden-env/esia-reconcile/internal/extract"
	"github.com/arden-env/esia-reconcile/internal/model"
	"github.com/arden-env/esia-reconcile/internal/units"
)

type bucketKey struct {
	Context  string
	BaseUnit string
}

type observation struct {
	quantity model.ExtractedQuantity
	location string
}

// collect extracts and classifies every fragment, returning buckets plus
// their first-seen order so output stays deterministic.
func collect(e *extract.Extractor, cl *units.Classifier, fragments []model.Fragment) (map[bucketKey][]observation, []bucketKey) {
	buckets := make(map[bucketKey][]observation)
	var order []bucketKey

	for _, frag := range fragments {
		for _, q := range e.Extract(frag.Text) {
			for _, name := range cl.Classify(frag.Text, q.RawUnit) {
				key := bucketKey{Context: name, BaseUnit: q.BaseUnit}
				if _, ok := buckets[key]; !ok {
					order = append(order, key)
				}
				buckets[key] = append(buckets[key], observation{quantity: q, location: frag.Location})
			}
		}
	}

	return buckets, order
}

func displayValue(q model.ExtractedQuantity) string {
	return strconv.FormatFloat(q.RawValue, 'f', -1, 64) + " " + q.RawUnit
}
