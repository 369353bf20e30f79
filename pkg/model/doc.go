// Package model defines the typed parameter model consumed by renderers. Each
// actor input field becomes exactly one Property, in schema order, whose Name
// is the field key unchanged. The set of property variants is closed
// (string, number, boolean, dateTime, options, multiOptions, json and
// fixedCollection) and Describe flattens any of them into the host platform's
// parameter description. Converters live in internal/model but return the
// types defined here. Fixed collections always hold a single sub-collection
// (items, values or pairs) and ExtractInput reverses that wrapping when a
// workflow hands parameter values back.
package model
