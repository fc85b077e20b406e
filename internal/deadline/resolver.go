// Package deadline decides the payment deadline of an installment whose
// source document does not declare one.
package deadline

import (
	"fmt"

	"scadenzade/internal/logging"
	"scadenzade/internal/models"
	"scadenzade/internal/parsererror"
)

// Source tells which rule produced a deadline.
type Source string

const (
	SourceManual       Source = "manual"
	SourceDocumentDate Source = "document_date"
	SourceEpoch        Source = "epoch"
)

// Request carries the user's choice for missing deadlines. ManualDate is an
// ISO date already validated by the caller.
type Request struct {
	Manual     bool
	ManualDate string
}

// Resolution is a resolved deadline and the advisory shown to the user.
type Resolution struct {
	Date     string
	Source   Source
	Advisory string
}

// Resolver applies the missing-deadline policy.
type Resolver struct {
	logger        logging.Logger
	epochFallback string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEpochFallback overrides the date used when the document has no date.
func WithEpochFallback(date string) Option {
	return func(r *Resolver) {
		if date != "" {
			r.epochFallback = date
		}
	}
}

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(logger logging.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	r := &Resolver{logger: logger, epochFallback: models.EpochFallbackDate}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the deadline for one installment of the document described
// by header and issuer.
//
// Rules, in order:
//   - manual with a date: that date
//   - manual without a date: *parsererror.UnresolvedDeadlineError
//   - otherwise the document date, or the epoch fallback when it is empty
//
// Every branch logs an advisory at WARN naming the document.
func (r *Resolver) Resolve(header, issuer models.FlatFieldMap, req Request) (Resolution, error) {
	number := header.Get(models.TagDocumentNumber)
	date := header.Get(models.TagDocumentDate)
	party := issuer.Get(models.TagName)

	var res Resolution
	switch {
	case req.Manual && req.ManualDate != "":
		res = Resolution{
			Date:   req.ManualDate,
			Source: SourceManual,
			Advisory: fmt.Sprintf("invoice %s of %s from %s has no payment deadline; "+
				"the manual deadline %s will be written into the document", number, date, party, req.ManualDate),
		}
	case req.Manual:
		advisory := fmt.Sprintf("invoice %s of %s from %s has no payment deadline "+
			"and none was entered manually", number, date, party)
		r.logger.Warn(advisory,
			logging.F(logging.FieldDocument, number),
			logging.F(logging.FieldReason, parsererror.ErrManualDeadlineMissing.Error()))
		return Resolution{Advisory: advisory}, &parsererror.UnresolvedDeadlineError{
			DocumentNumber: number,
			Advisory:       advisory,
		}
	default:
		res = Resolution{Date: date, Source: SourceDocumentDate}
		if date == "" {
			res = Resolution{Date: r.epochFallback, Source: SourceEpoch}
		}
		res.Advisory = fmt.Sprintf("invoice %s of %s from %s has no payment deadline; "+
			"the deadline is taken as %s", number, date, party, res.Date)
	}

	r.logger.Warn(res.Advisory,
		logging.F(logging.FieldDocument, number),
		logging.F(logging.FieldDeadline, res.Date),
		logging.F(logging.FieldSource, string(res.Source)))
	return res, nil
}
