package data

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LikedSet is the set of champion ids the user marked as favorites.
// Insertion order is kept so the stored JSON array stays stable.
type LikedSet struct {
	ids   []int
	index map[int]struct{}
}

func NewLikedSet(ids ...int) *LikedSet {
	s := &LikedSet{index: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// ParseLikedSet decodes a stored cell. An empty cell is an empty set.
func ParseLikedSet(raw string) (*LikedSet, error) {
	if strings.TrimSpace(raw) == "" {
		return NewLikedSet(), nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to parse liked ids: %w", err)
	}
	return NewLikedSet(ids...), nil
}

// Encode returns the set as a JSON array, "[]" when empty.
func (s *LikedSet) Encode() (string, error) {
	ids := s.ids
	if ids == nil {
		ids = []int{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode liked ids: %w", err)
	}
	return string(b), nil
}

func (s *LikedSet) Contains(id int) bool {
	_, ok := s.index[id]
	return ok
}

func (s *LikedSet) Len() int {
	return len(s.ids)
}

func (s *LikedSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Toggle removes id when present and appends it otherwise.
// It reports whether id is liked afterwards.
func (s *LikedSet) Toggle(id int) bool {
	if s.Contains(id) {
		s.remove(id)
		return false
	}
	s.add(id)
	return true
}

// Filter returns the champions whose id is in the set, in list order.
func (s *LikedSet) Filter(champions []Champion) []Champion {
	var out []Champion
	for _, c := range champions {
		if s.Contains(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// Prune drops ids that are not in champions and returns the dropped ids.
func (s *LikedSet) Prune(champions []Champion) []int {
	known := make(map[int]struct{}, len(champions))
	for _, c := range champions {
		known[c.ID] = struct{}{}
	}

	var removed []int
	for _, id := range s.IDs() {
		if _, ok := known[id]; !ok {
			s.remove(id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (s *LikedSet) add(id int) {
	if s.index == nil {
		s.index = make(map[int]struct{})
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *LikedSet) remove(id int) {
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}
