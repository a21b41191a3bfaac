// Package ner recognizes named entities in document text through a
// hosted token-classification model.
package ner

import "sort"

// Entity group labels produced by CoNLL-2003 models.
const (
	GroupPerson       = "PER"
	GroupOrganization = "ORG"
	GroupLocation     = "LOC"
	GroupMisc         = "MISC"
)

// Entity is one recognized span of document text.
type Entity struct {
	Group string  `json:"entity_group"`
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Start int     `json:"start"`
	End   int     `json:"end"`
}

// MergeAdjacent joins same-group spans separated by at most one character
// (models split long names across tokenizer chunks). Input order does not
// matter; the result is sorted by start offset.
func MergeAdjacent(ents []Entity) []Entity {
	if len(ents) <= 1 {
		return sortByStart(ents)
	}
	ents = sortByStart(ents)

	out := make([]Entity, 0, len(ents))
	cur := ents[0]
	for _, e := range ents[1:] {
		if e.Group == cur.Group && e.Start-cur.End <= 1 {
			cur.Word = cur.Word + " " + e.Word
			cur.End = e.End
			if e.Score < cur.Score {
				cur.Score = e.Score // keep the weakest link's score
			}
			continue
		}
		out = append(out, cur)
		cur = e
	}
	return append(out, cur)
}

// BestByGroup returns the highest-scoring entity of the given group.
func BestByGroup(ents []Entity, group string) (Entity, bool) {
	best := Entity{}
	found := false
	for _, e := range ents {
		if e.Group != group {
			continue
		}
		if !found || e.Score > best.Score {
			best = e
			found = true
		}
	}
	return best, found
}

func sortByStart(ents []Entity) []Entity {
	s := make([]Entity, len(ents))
	copy(s, ents)
	sort.Slice(s, func(i, j int) bool {
		if s[i].Start != s[j].Start {
			return s[i].Start < s[j].Start
		}
		return s[i].End < s[j].End
	})
	return s
}
