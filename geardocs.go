// Package geardocs maintains a locally cached, normalized corpus of technical
// documentation drawn from heterogeneous remote sources (HTML pages, XML
// standards documents, JSON schemas, and repository-hosted markdown files)
// and exposes each normalized document as an individually queryable unit.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or function (e.g., http/, goquery/,
// htmltomarkdown/, render/, pipeline/).
package geardocs
