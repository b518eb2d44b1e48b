package trace

import "github.com/google/uuid"

// Recorder accumulates the ordered iteration history of a single run.
//
// Created empty per run, owned exclusively by that run, and handed off
// into the Result by Seal. Not safe for concurrent use — each run owns
// its own Recorder, which is all the isolation the engines need.
type Recorder struct {
	runID    uuid.UUID
	places   int
	records  []Record
	warnings []string
}

// NewRecorder creates a Recorder whose display precision is derived from
// the run's tolerance via DecimalPlaces.
func NewRecorder(tolerance float64) *Recorder {
	return &Recorder{
		runID:  uuid.New(),
		places: DecimalPlaces(tolerance),
	}
}

// Append adds one record, rounding its numeric fields to the display
// precision. Callers keep unrounded locals for every comparison; the
// stored values are for reporting only.
func (r *Recorder) Append(rec Record) {
	rec.Estimate = Round(rec.Estimate, r.places)
	if rec.HasFValue {
		rec.FValue = Round(rec.FValue, r.places)
	}
	if rec.HasError {
		rec.Error = Round(rec.Error, r.places)
	}
	for k, v := range rec.Aux {
		rec.Aux[k] = Round(v, r.places)
	}
	r.records = append(r.records, rec)
}

// Warn attaches a warning-level condition to the run (e.g. seeds that do
// not bracket a sign change).
func (r *Recorder) Warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Len returns the number of records appended so far.
func (r *Recorder) Len() int { return len(r.records) }

// Seal terminates the run into a Result, moving the accumulated records
// and warnings. The Recorder must not be used afterwards.
func (r *Recorder) Seal(method Method, status Status, failure FailureKind, root float64) *Result {
	res := &Result{
		Method:   method,
		RunID:    r.runID,
		Status:   status,
		Failure:  failure,
		Root:     root,
		Records:  r.records,
		Warnings: r.warnings,
	}
	r.records = nil
	r.warnings = nil

	return res
}
