// Package icd provides the conversion services behind the CLI commands:
// the workbook to CSV converter, the fixed-layout CSV reparser that publishes
// ICD-10/ICD-11 mappings as JSON, and the search over the published mappings.
package icd
