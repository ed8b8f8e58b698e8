package aggregate

// shape classifies an upstream response body. The decision is made once
// per response; everything downstream switches on the result instead of
// re-sniffing types.
type shape int

const (
	shapeUnrecognized shape = iota
	shapeSequence
	shapeWrappedSequence
	shapeSingleRecord
)

// classify determines the shape of a parsed JSON body. For sequence
// shapes the record sequence is returned; for mapping shapes the
// mapping is returned. A wrapped sequence (a mapping whose "data" field
// holds a sequence) yields both, since some lookups unwrap it and
// others treat it as a plain record.
func classify(body any) (shape, []any, map[string]any) {
	switch v := body.(type) {
	case []any:
		return shapeSequence, v, nil
	case map[string]any:
		if inner, ok := v["data"].([]any); ok {
			return shapeWrappedSequence, inner, v
		}
		return shapeSingleRecord, nil, v
	default:
		return shapeUnrecognized, nil, nil
	}
}
