package domain

// Town is reference data used for geographic targeting.
type Town struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Keyword is a search result from the keyword dictionary. Campaigns store
// only the Value; the ID is used to tell suggestions apart.
type Keyword struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// UniqueKeywords drops suggestions whose ID was already seen, keeping the
// first occurrence.
func UniqueKeywords(keywords []Keyword) []Keyword {
	seen := make(map[int64]struct{}, len(keywords))
	out := make([]Keyword, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw.ID]; ok {
			continue
		}
		seen[kw.ID] = struct{}{}
		out = append(out, kw)
	}
	return out
}
