// Package jsonfile writes harvests as a single JSON document.
//
// The document replaces any existing file at the target path. It is first
// written to a sibling ".part" file and renamed into place, so readers never
// observe a half-written harvest.
//
// Shapes by format:
//
//   - records: [record, ...] in window then star order
//   - monthly: [[record, ...], ...] with one array per window
//   - names:   {"YYYY-MM-DD": ["owner/name", ...], ...} keyed by window start
package jsonfile
