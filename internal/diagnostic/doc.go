// Package diagnostic provides structured warnings and errors reported while
// checking sprite manifests.
//
// Every diagnostic carries a stable code (e.g. "invalid_lookup"), a message
// and the manifest location it refers to, so callers can print all problems
// of a manifest at once instead of stopping at the first one.
package diagnostic
