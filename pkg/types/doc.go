// Package types infers the semantic data type of scalar values, and coerces
// values into a requested data type.
//
// The supported data types form a closed set: string, integer, double, boolean
// and date. Dates are represented as integer offsets since the unix epoch.
//
// Inference looks at the native Go type first (time, boolean, floating-point,
// integer, in this order), then falls back to parsing the textual form of the
// value: integer first, then floating-point, then string.
package types
