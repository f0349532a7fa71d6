package holdings

import (
	"sharedprint/feature/circulation"

	"go.uber.org/zap"
)

// Totals accumulates counts over one pass. Counters only ever increase.
type Totals struct {
	Records         int `json:"records"`
	IncludedRecords int `json:"included_records"`
	Items           int `json:"items"`
	ValidItems      int `json:"valid_items"`
	UnknownCodes    int `json:"unknown_codes"`
}

// Outcome is the classification of one record.
type Outcome struct {
	Items      int
	ValidItems int
	// Includable is true when at least one item is valid.
	Includable bool
}

// Filter classifies the items of each record.
type Filter struct {
	logger *zap.Logger
}

// NewFilter creates a Filter that reports unknown codes and, at debug level,
// item statuses to logger.
func NewFilter(logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filter{logger: logger}
}

// Tally classifies every item of bib and adds the result to totals.
func (f *Filter) Tally(bib *Bib, totals *Totals) Outcome {
	var out Outcome
	for _, item := range bib.Items {
		v := f.classify(bib, item, totals)
		out.Items++
		if v.Valid {
			out.ValidItems++
		}
	}
	out.Includable = out.ValidItems > 0

	totals.Records++
	totals.Items += out.Items
	totals.ValidItems += out.ValidItems
	if out.Includable {
		totals.IncludedRecords++
	}
	return out
}

// HasValidItem reports whether bib has a valid item, stopping at the first one.
func (f *Filter) HasValidItem(bib *Bib, totals *Totals) bool {
	for _, item := range bib.Items {
		if f.classify(bib, item, totals).Valid {
			return true
		}
	}
	return false
}

func (f *Filter) classify(bib *Bib, item circulation.Item, totals *Totals) circulation.Verdict {
	v := circulation.Classify(item)

	for _, u := range v.Unknown {
		totals.UnknownCodes++
		f.logger.Warn("Unknown status code, item treated as not circulating",
			zap.Int("record", bib.Position),
			zap.String("title", bib.Title),
			zap.String("subfield", string(u.Field)),
			zap.String("code", u.Code),
		)
	}

	if len(v.Labels) > 0 {
		f.logger.Debug("Item status",
			zap.String("title", bib.Title),
			zap.Strings("status", v.Labels),
			zap.Bool("valid", v.Valid),
		)
	}
	return v
}
