package spellcheck

import (
	"github.com/derekparker/trie"
)

// lookupTable maps a surface-form word string to the (possibly
// multi-entry) list of flag sets that produced it. It is backed by
// github.com/derekparker/trie: insertion happens incrementally
// throughout dictionary expansion, so the structure needs to support
// ongoing Add calls rather than a freeze/compact cycle.
type lookupTable struct {
	t     *trie.Trie
	count int
}

func newLookupTable() *lookupTable {
	return &lookupTable{t: trie.New()}
}

// insert appends fs to word's flag-set list, creating the entry if it did
// not exist yet. Repeated inserts for the same word accumulate rather
// than overwrite, so every base entry or affix derivation that produced
// that surface form is visible. An empty fs still creates/extends the
// entry, since an affix derivation with no base entry of its own must
// still be present in the table.
func (lt *lookupTable) insert(word string, fs FlagSet) {
	if word == "" {
		return
	}
	existing := lt.get(word)
	if existing == nil {
		lt.count++
	}
	lt.t.Add(word, append(existing, fs))
}

// get returns the flag-set list stored for word, or nil if word is not a
// key of the table.
func (lt *lookupTable) get(word string) []FlagSet {
	node, ok := lt.t.Find(word)
	if !ok {
		return nil
	}
	meta := node.Meta()
	if meta == nil {
		return nil
	}
	fsl, _ := meta.([]FlagSet)
	return fsl
}
