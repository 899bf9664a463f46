// Package parse extracts structured data from model output.
//
// Step outputs arrive as loosely formatted text: numbered lists of title
// or description candidates, labeled image prompt blocks, and alt text
// tables. The parsers here are deliberately forgiving about bullets,
// numbering style and French or English labels, because the upstream
// format drifts between prompt revisions.
package parse
