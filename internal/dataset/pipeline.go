package dataset

import "time"

// Process runs the full ingestion pipeline on a raw table:
// header normalization, the required-column gate, record building,
// field derivation and categorical classification. The returned
// Dataset is the canonical Employee Record Table.
//
// The only error condition is the schema gate; individual bad cells
// degrade to nulls/sentinels instead of failing the load.
func Process(raw *RawTable, now time.Time) (*Dataset, error) {
	headers := NormalizeHeaders(raw.Headers)
	if err := ValidateRequired(headers); err != nil {
		return nil, err
	}
	d := build(headers, raw.Rows)
	Rederive(d, now)
	return d, nil
}

// Rederive recomputes every derived field in place. Safe to call after
// any edit; derivation and classification are idempotent.
func Rederive(d *Dataset, now time.Time) {
	derive(d, now)
	classify(d, now)
}
