// Package export renders an assembled article for its destinations.
//
// Every exporter consumes the same AssembledArticle shape produced by
// the engine: Markdown writes the canonical document to disk, HTML
// converts it to a standalone page, and WordPress pushes a post through
// the REST API. Exporters never retry; a failed push is reported to the
// operator who decides whether to re-run it.
package export
