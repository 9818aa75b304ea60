// Package dawg implements a static, read-optimized string-keyed map on top
// of a minimal acyclic deterministic finite automaton (a DAWG) compiled into
// a double-array trie.
//
// Build a map by feeding sorted keys to a DawgBuilder, finishing it into a
// Dawg, then compiling that Dawg into a Dictionary (and, optionally, a Guide
// or RankedGuide for completion). The resulting Dictionary/Guide pair is
// immutable and safe to share across goroutines; Completer, RankedCompleter
// and Nearest are traversal cursors and must not be shared.
//
// Binary layout is compatible with the dawgdic/DAWG family of C++ and Python
// libraries: a host-endian uint32 count followed by that many units (4 bytes
// each for a Dictionary, 2 bytes each for a Guide or RankedGuide).
package dawg
