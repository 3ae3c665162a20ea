package tokens

import "github.com/zeebo/xxh3"

// langTagInterner returns one shared string per distinct language tag so a
// document with many "@en" literals holds a single "en".
type langTagInterner struct {
	tags map[uint64][]string
}

func newLangTagInterner() *langTagInterner {
	return &langTagInterner{tags: make(map[uint64][]string)}
}

func (in *langTagInterner) intern(b []byte) string {
	h := xxh3.Hash(b)
	for _, s := range in.tags[h] {
		if s == string(b) {
			return s
		}
	}
	s := string(b)
	in.tags[h] = append(in.tags[h], s)
	return s
}

// len returns the number of distinct tags seen.
func (in *langTagInterner) len() int {
	n := 0
	for _, bucket := range in.tags {
		n += len(bucket)
	}
	return n
}
