// Package clipper extracts structured records from web pages that are
// already loaded in memory: commerce listings, articles, videos, generic
// pages, and free-form selections that may encode task lists.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, trafilatura/)
// or, for dependency-free logic, after their concern (extract/).
package clipper
