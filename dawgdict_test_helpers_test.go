package dawg

import "sort"

// kv is a key/value pair used throughout the test suite to describe a
// dictionary's expected contents.
type kv struct {
	key   string
	value int32
}

// buildFromPairs inserts pairs (sorted by key) into a fresh DawgBuilder and
// compiles the result into a Dawg, Dictionary and Guide.
func buildFromPairs(pairs []kv) (*Dawg, *Dictionary, *Guide, error) {
	sorted := append([]kv(nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].key < sorted[j].key })

	builder := NewDawgBuilder()
	for _, p := range sorted {
		if err := builder.Insert(p.key, p.value); err != nil {
			return nil, nil, nil, err
		}
	}
	d := builder.Finish()

	dic, _, err := BuildDictionary(d)
	if err != nil {
		return nil, nil, nil, err
	}

	guide, err := BuildGuide(d, dic)
	if err != nil {
		return nil, nil, nil, err
	}
	return d, dic, guide, nil
}

// completions drains a Completer started at index/prefix into a []kv.
func completions(dic *Dictionary, guide *Guide, index uint32, prefix []byte) []kv {
	c := NewCompleter(dic, guide)
	c.Start(index, prefix)
	var out []kv
	for c.Next() {
		out = append(out, kv{key: string(append([]byte(nil), c.Key()...)), value: c.Value()})
	}
	return out
}
