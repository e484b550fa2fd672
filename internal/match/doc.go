// Package match ranks icon names by similarity to suggest alternatives for
// lookups that match no registered icon.
//
// Names are normalized (case-folded, separators removed) and compared with a
// normalized Levenshtein similarity between 0 and 1.
package match
