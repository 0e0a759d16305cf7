package feed

import "slices"

// Set is an unordered collection of canonical feed URLs.
type Set map[string]struct{}

func NewSet(urls ...string) Set {
	s := make(Set, len(urls))
	for _, u := range urls {
		s.Add(u)
	}
	return s
}

func (s Set) Add(url string) {
	s[url] = struct{}{}
}

func (s Set) Contains(url string) bool {
	_, ok := s[url]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	urls := make([]string, 0, len(s))
	for u := range s {
		urls = append(urls, u)
	}
	slices.Sort(urls)
	return urls
}
