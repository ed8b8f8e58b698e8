// Package models defines the merged lookup document returned to the
// caller.
package models

// Document is the merged result of the three chained lookups. The
// section types are deliberately open: each section is a record
// sequence on the happy path, but degrades to a marker object (warning,
// status or error) when the corresponding lookups produce nothing.
// Consumers must handle both shapes.
type Document struct {
	MobileInfo  any `json:"MOBILE_INFO"`
	AadhaarInfo any `json:"AADHAAR_INFO"`
	FamilyInfo  any `json:"FAMILY_INFO"`
}

// Status markers used when the primary lookup yields no usable data or
// no qualifying identifiers.
const (
	WarningNoData   = "No data found"
	StatusNoAadhaar = "No valid Aadhaar numbers found"
	StatusNoFamily  = "No family info available"
)

// NoDataMarker is the primary section placeholder for an unusable
// primary response.
func NoDataMarker() map[string]any {
	return map[string]any{"warning": WarningNoData}
}

// NoAadhaarMarker is the secondary section placeholder when no
// identifiers were found.
func NoAadhaarMarker() map[string]any {
	return map[string]any{"status": StatusNoAadhaar}
}

// NoFamilyMarker is the tertiary section placeholder when no
// identifiers were found.
func NoFamilyMarker() map[string]any {
	return map[string]any{"status": StatusNoFamily}
}
