// Package websoup provides convenience functions for fetching web pages
// and parsing them into navigable documents. It supports three retrieval
// backends (plain HTTP, HTTP followed by a script-execution render step,
// and full headless-browser navigation), a heuristic classifier that picks
// between them for a given URL, and helpers for harvesting form fields
// (hidden CSRF tokens included) before submitting login or search forms.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., resty/, rod/, goquery/).
package websoup
