// Package aggregate orchestrates the three chained lookups and merges
// their results into one document.
package aggregate

import (
	"context"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"numlookup/internal/config"
	"numlookup/internal/metrics"
	"numlookup/internal/models"
	"numlookup/internal/textwrap"
	"numlookup/internal/upstream"
)

// maxConcurrentLookups bounds the per-identifier fan-out across both
// lookup tiers.
const maxConcurrentLookups = 8

// Tier names used for metrics labels.
const (
	tierMobile  = "mobile_info"
	tierAadhaar = "aadhaar_info"
	tierFamily  = "family_info"
)

// Aggregator runs the lookup chain: mobile record, then per-identifier
// personal and family records.
type Aggregator struct {
	client *upstream.Client
	cfg    *config.Config
}

// New creates an aggregator using the given upstream client and
// endpoint configuration.
func New(client *upstream.Client, cfg *config.Config) *Aggregator {
	return &Aggregator{client: client, cfg: cfg}
}

// Aggregate performs the full lookup chain for a phone number. Upstream
// failures never fail the aggregate: each is recorded in its section of
// the document and processing continues.
func (a *Aggregator) Aggregate(ctx context.Context, number string) models.Document {
	var doc models.Document

	records, callErr := a.lookupMobile(ctx, number)
	switch {
	case callErr != nil:
		doc.MobileInfo = callErr.Fields()
	case len(records) == 0:
		doc.MobileInfo = models.NoDataMarker()
	default:
		formatted := make([]any, 0, len(records))
		for _, r := range records {
			if record, ok := r.(map[string]any); ok {
				formatted = append(formatted, textwrap.FormatRecord(record))
			} else {
				formatted = append(formatted, r)
			}
		}
		doc.MobileInfo = formatted
	}

	ids := collectIdentifiers(records)
	if len(ids.order) == 0 {
		doc.AadhaarInfo = models.NoAadhaarMarker()
		doc.FamilyInfo = models.NoFamilyMarker()
		return doc
	}

	// Both per-identifier tiers fan out concurrently. Results land in
	// slices indexed by identifier position, so the output order is the
	// order identifiers were discovered regardless of completion order.
	personal := make([]any, len(ids.order))
	family := make([]any, len(ids.order))

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentLookups)
	for i, id := range ids.order {
		g.Go(func() error {
			personal[i] = a.lookupPersonal(ctx, id)
			return nil
		})
		g.Go(func() error {
			family[i] = a.lookupFamily(ctx, id)
			return nil
		})
	}
	// Lookup failures are entries in the document, never group errors.
	_ = g.Wait()

	doc.AadhaarInfo = personal
	doc.FamilyInfo = family
	return doc
}

// lookupMobile calls the primary mobile-record service and extracts the
// record sequence, if the response carries one.
func (a *Aggregator) lookupMobile(ctx context.Context, number string) ([]any, *upstream.CallError) {
	body, callErr := a.get(ctx, tierMobile, a.cfg.MobileInfoURL, url.Values{"mobile": {number}})
	if callErr != nil {
		return nil, callErr
	}
	switch s, seq, _ := classify(body); s {
	case shapeSequence, shapeWrappedSequence:
		return seq, nil
	default:
		return nil, nil
	}
}

// lookupPersonal calls the personal-record service for one identifier
// and builds its result entry.
func (a *Aggregator) lookupPersonal(ctx context.Context, id string) map[string]any {
	entry := map[string]any{"aadhaar_number": id}

	body, callErr := a.get(ctx, tierAadhaar, a.cfg.AadhaarInfoURL, url.Values{"aadhar": {id}})
	if callErr != nil {
		for k, v := range callErr.Fields() {
			entry[k] = v
		}
		return entry
	}

	var details any
	switch s, seq, record := classify(body); s {
	case shapeSequence:
		formatted := make([]any, 0, len(seq))
		for _, r := range seq {
			if rec, ok := r.(map[string]any); ok {
				formatted = append(formatted, textwrap.FormatRecord(rec))
			} else {
				formatted = append(formatted, r)
			}
		}
		details = formatted
	case shapeWrappedSequence, shapeSingleRecord:
		details = textwrap.FormatRecord(record)
	default:
		details = body
	}

	entry["details"] = details
	return entry
}

// lookupFamily calls the family-record service for one identifier and
// builds its result entry. Family responses are mappings whose fields
// may themselves hold record sequences or nested records; each gets the
// formatter applied at its own level.
func (a *Aggregator) lookupFamily(ctx context.Context, id string) map[string]any {
	entry := map[string]any{"aadhaar_number": id}

	params := url.Values{"aadhaar": {id}}
	if a.cfg.FamilyAPIKey != "" {
		params.Set("key", a.cfg.FamilyAPIKey)
	}
	body, callErr := a.get(ctx, tierFamily, a.cfg.FamilyInfoURL, params)
	if callErr != nil {
		for k, v := range callErr.Fields() {
			entry[k] = v
		}
		return entry
	}

	entry["family_details"] = formatFamily(body)
	return entry
}

// formatFamily rebuilds a family mapping field by field: sequences get
// the formatter mapped over their record elements, nested records get
// it applied once, everything else passes through. Non-mapping bodies
// pass through verbatim.
func formatFamily(body any) any {
	record, ok := body.(map[string]any)
	if !ok {
		return body
	}
	rebuilt := make(map[string]any, len(record))
	for key, value := range record {
		switch v := value.(type) {
		case []any:
			items := make([]any, 0, len(v))
			for _, item := range v {
				if rec, ok := item.(map[string]any); ok {
					items = append(items, textwrap.FormatRecord(rec))
				} else {
					items = append(items, item)
				}
			}
			rebuilt[key] = items
		case map[string]any:
			rebuilt[key] = textwrap.FormatRecord(v)
		default:
			rebuilt[key] = value
		}
	}
	return rebuilt
}

// get performs one instrumented upstream call.
func (a *Aggregator) get(ctx context.Context, tier, base string, params url.Values) (any, *upstream.CallError) {
	start := time.Now()
	body, callErr := a.client.Get(ctx, buildURL(base, params))
	outcome := "ok"
	if callErr != nil {
		outcome = callErr.Kind
	}
	metrics.RecordUpstream(tier, outcome, time.Since(start))
	return body, callErr
}

// buildURL appends query parameters to a base endpoint URL, preserving
// any parameters already present on the base.
func buildURL(base string, params url.Values) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
