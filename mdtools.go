// Package mdtools provides small command-line tools for maintaining markdown
// documents. It regenerates table-of-contents blocks from document headings
// and converts (transposes) markdown tables, optionally fetching the source
// over HTTP.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goldmark/, goquery/, http/).
package mdtools
