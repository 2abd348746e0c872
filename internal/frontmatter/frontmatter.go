// Package frontmatter adds and reads the tags header of a note.
//
// The header is a fixed, minimal block:
//
//	---
//	tags: [work, idea]
//	---
//
// followed by a blank line and the note itself. When only a secondary tag is
// set, one extra line follows the tags line so the slot survives decoding:
//
//	---
//	tags: [idea]
//	tag_slots: [secondary]
//	---
//
// Decoding is best effort and only understands the lines written by
// [Encode]; it is not a YAML parser.
package frontmatter

import (
	"regexp"
	"strings"

	"github.com/yasu691/fragmenta/internal/model"
)

const delimiter = "---"

var (
	blockRe = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(.*?)\r?\n---[ \t]*(?:\r?\n|\z)`)
	tagsRe  = regexp.MustCompile(`(?m)^[ \t]*tags:[ \t]*\[([^\]\r\n]*)\]`)
	slotsRe = regexp.MustCompile(`(?m)^[ \t]*tag_slots:[ \t]*\[([^\]\r\n]*)\]`)
)

// Encode prepends the tags header to content.
//
// An empty selection returns content unchanged. Tags are listed primary
// first; an unset slot is left out of the list. A lone secondary tag also
// gets a tag_slots line so that Decode puts it back in the secondary slot.
func Encode(content string, tags model.TagSelection) string {
	if tags.IsEmpty() {
		return content
	}

	var sb strings.Builder

	sb.WriteString(delimiter + "\n")
	sb.WriteString("tags: [" + strings.Join(tags.Values(), ", ") + "]\n")

	if tags.Primary == "" {
		sb.WriteString("tag_slots: [" + string(model.TagTypeSecondary) + "]\n")
	}

	sb.WriteString(delimiter + "\n\n")
	sb.WriteString(content)

	return sb.String()
}

// Decode extracts the tag selection from a note's header.
//
// It returns false when there is no leading header, no tags line, or the
// list is empty. Malformed input never produces an error.
func Decode(content string) (model.TagSelection, bool) {
	block := blockRe.FindStringSubmatch(content)
	if block == nil {
		return model.TagSelection{}, false
	}

	body := block[1]

	m := tagsRe.FindStringSubmatch(body)
	if m == nil {
		return model.TagSelection{}, false
	}

	values := splitList(m[1])
	if len(values) == 0 {
		return model.TagSelection{}, false
	}

	var slots []string
	if s := slotsRe.FindStringSubmatch(body); s != nil {
		slots = splitList(s[1])
	}

	var sel model.TagSelection

	for i, v := range values {
		slot := positionalSlot(i)
		if i < len(slots) {
			slot = slots[i]
		}

		switch model.TagType(slot) {
		case model.TagTypePrimary:
			sel.Primary = v
		case model.TagTypeSecondary:
			sel.Secondary = v
		}
	}

	if sel.IsEmpty() {
		return model.TagSelection{}, false
	}

	return sel, true
}

// HasHeader reports whether content starts with a header block.
func HasHeader(content string) bool {
	return blockRe.MatchString(content)
}

func positionalSlot(i int) string {
	switch i {
	case 0:
		return string(model.TagTypePrimary)
	case 1:
		return string(model.TagTypeSecondary)
	default:
		return ""
	}
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}

	return out
}
