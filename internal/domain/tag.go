package domain

import (
	"encoding/json"
	"sort"

	"gopkg.in/yaml.v3"
)

// TagSet is a set of string labels. Only membership matters: insertion
// order and duplicates are not observable.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from the given labels. Empty labels are skipped.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Len returns the number of distinct tags.
func (s TagSet) Len() int { return len(s) }

// Values returns the tags sorted lexically.
func (s TagSet) Values() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set. A nil set clones to an
// empty one.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes a JSON array of strings.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}

// MarshalYAML encodes the set as a sorted YAML sequence.
func (s TagSet) MarshalYAML() (interface{}, error) {
	return s.Values(), nil
}

// UnmarshalYAML decodes a YAML sequence of strings.
func (s *TagSet) UnmarshalYAML(value *yaml.Node) error {
	var tags []string
	if err := value.Decode(&tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
