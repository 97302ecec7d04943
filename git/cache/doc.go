// Package cache holds the in-memory memo tables behind a git.Repository.
//
// # Overview
//
// A Store keeps three tables, all keyed by "<revision>:<path>" where a key
// applies:
//
//  1. Files: raw bytes returned by `git show <revision>:<path>`
//  2. Dirs: parsed tree listings (immediate files and subdirectories)
//  3. Tags: the full tag name → object id table, loaded in one go
//
// Nothing is persisted and nothing is evicted individually. Clear empties
// all three tables at once.
//
// # Generations
//
// Every Clear bumps a generation counter. Writers record the generation
// before they start the slow work and hand it back to the Put call; a Put
// carrying an older generation is dropped, so a result computed before a
// Clear never repopulates the cleared tables.
//
//	gen := store.Generation()
//	data, err := runGit(...)
//	if err == nil {
//	    store.PutFile(gen, cache.Key(rev, path), data)
//	}
//
// # Invariants
//
// A key is never present in both Files and Dirs after PutDir: storing a
// listing drops the raw tree bytes it was parsed from.
package cache
