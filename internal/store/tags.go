package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/yasu691/fragmenta/internal/model"
)

var (
	// ErrDuplicateTag is returned when a name already exists within a type
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrTagNotFound is returned when no tag has the given id
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidReorder is returned when a reorder does not list every tag of the type exactly once
	ErrInvalidReorder = errors.New("invalid tag order")
)

// GetTags returns the whole catalog as persisted.
func (s *Store) GetTags() ([]model.Tag, error) {
	var tags []model.Tag

	if _, err := s.getJSON(KeyTags, &tags); err != nil {
		return nil, err
	}

	return tags, nil
}

// GetTagsByType returns the tags of one type sorted by order.
func (s *Store) GetTagsByType(t model.TagType) ([]model.Tag, error) {
	tags, err := s.GetTags()
	if err != nil {
		return nil, err
	}

	return filterTags(tags, t), nil
}

// FindTag returns the tag of type t named name, or nil.
func (s *Store) FindTag(t model.TagType, name string) (*model.Tag, error) {
	tags, err := s.GetTagsByType(t)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)

	for i := range tags {
		if tags[i].Name == name {
			return &tags[i], nil
		}
	}

	return nil, nil
}

// AddTag appends a tag at the end of its type's ordering.
func (s *Store) AddTag(name string, t model.TagType) (model.Tag, error) {
	if _, err := model.ParseTagType(string(t)); err != nil {
		return model.Tag{}, err
	}

	name = strings.TrimSpace(name)
	if err := model.ValidateTagName(name); err != nil {
		return model.Tag{}, err
	}

	tags, err := s.GetTags()
	if err != nil {
		return model.Tag{}, err
	}

	count := 0

	for _, existing := range tags {
		if existing.Type != t {
			continue
		}

		if existing.Name == name {
			return model.Tag{}, fmt.Errorf("%w: %s tag %q", ErrDuplicateTag, t, name)
		}

		count++
	}

	tag := model.Tag{
		ID:    uuid.New().String(),
		Name:  name,
		Order: count,
		Type:  t,
	}

	if err := s.putJSON(KeyTags, append(tags, tag)); err != nil {
		return model.Tag{}, err
	}

	return tag, nil
}

// DeleteTag removes a tag and shifts later tags of the same type down by one.
func (s *Store) DeleteTag(id string) error {
	tags, err := s.GetTags()
	if err != nil {
		return err
	}

	idx := -1

	for i := range tags {
		if tags[i].ID == id {
			idx = i
			break
		}
	}

	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrTagNotFound, id)
	}

	removed := tags[idx]
	remaining := append(tags[:idx:idx], tags[idx+1:]...)

	for i := range remaining {
		if remaining[i].Type == removed.Type && remaining[i].Order > removed.Order {
			remaining[i].Order--
		}
	}

	return s.putJSON(KeyTags, remaining)
}

// ReorderTags renumbers the tags of type t by their position in ids.
// ids must name every tag of that type exactly once.
func (s *Store) ReorderTags(t model.TagType, ids []string) error {
	tags, err := s.GetTags()
	if err != nil {
		return err
	}

	position := make(map[string]int, len(ids))

	for i, id := range ids {
		if _, dup := position[id]; dup {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidReorder, id)
		}

		position[id] = i
	}

	matched := 0

	for i := range tags {
		if tags[i].Type != t {
			continue
		}

		pos, ok := position[tags[i].ID]
		if !ok {
			return fmt.Errorf("%w: %s tag %q missing", ErrInvalidReorder, t, tags[i].Name)
		}

		tags[i].Order = pos
		matched++
	}

	if matched != len(ids) {
		return fmt.Errorf("%w: %d ids given, %d %s tags exist", ErrInvalidReorder, len(ids), matched, t)
	}

	return s.putJSON(KeyTags, tags)
}

func filterTags(tags []model.Tag, t model.TagType) []model.Tag {
	out := make([]model.Tag, 0, len(tags))

	for _, tag := range tags {
		if tag.Type == t {
			out = append(out, tag)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})

	return out
}
