// Package icd holds the ICD-10 to ICD-11 code mapping record, its extraction from
// the fixed source layout, its JSON encoding and the substring search over it.
package icd
