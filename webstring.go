// Package webstring wraps text fragments extracted from web documents (HTML
// snippets, XPath expressions) with a declared format and a comparison
// strategy, so they can be checked for well-formedness and scored for
// similarity against each other.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., difflib/, html/, xpath/).
package webstring
