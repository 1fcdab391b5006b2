package document

// Document is an opaque, schemaless JSON object such as an organization's
// settings, its AI policy, or a user's work schedule. The shape is extended
// over time by callers this package knows nothing about, so merges must carry
// unknown keys through untouched and must never assume a key exists.
type Document map[string]any

// Merge applies patch over current as a shallow top-level merge: every key
// present in patch replaces the whole value under that key (nested objects are
// replaced, not deep-merged), keys absent from patch are preserved from
// current, and no key is ever removed. A JSON null in patch is a value like
// any other, not a deletion; deletion would be a separate explicit operation.
//
// Merge is pure and idempotent and never mutates its inputs, so concurrent
// merge attempts can be recomputed against a fresh read without aliasing.
func Merge(current, patch Document) Document {
	merged := make(Document, len(current)+len(patch))
	for key, value := range current {
		merged[key] = value
	}
	for key, value := range patch {
		merged[key] = value
	}
	return merged
}

// Clone returns a shallow copy of the document. Nested values are shared,
// which is safe as long as callers treat documents as immutable.
func Clone(doc Document) Document {
	if doc == nil {
		return Document{}
	}
	return Merge(doc, nil)
}
