package xmlutils

import (
	"strings"

	"scadenzade/internal/models"

	"github.com/beevik/etree"
)

// Flatten collapses the subtree under elem into a tag -> text map.
//
// Traversal is depth-first in document order. An element without child
// elements is a leaf and contributes its trimmed text under its local tag
// name; any other element is descended into. The element itself never
// contributes.
//
// Collision policy: shallow merge, last value wins. When a tag occurs more
// than once in the subtree the later occurrence silently overwrites the
// earlier one. Flatten one semantic group at a time (one installment, one
// party); repeated groups that must stay distinct are indexed by the caller.
//
// A nil element yields an empty map.
func Flatten(elem *etree.Element) models.FlatFieldMap {
	out := models.FlatFieldMap{}
	flattenInto(elem, out)
	return out
}

// FlattenPrefixed is Flatten with every key prefixed.
func FlattenPrefixed(elem *etree.Element, prefix string) models.FlatFieldMap {
	return Flatten(elem).WithPrefix(prefix)
}

func flattenInto(elem *etree.Element, out models.FlatFieldMap) {
	if elem == nil {
		return
	}
	for _, child := range elem.ChildElements() {
		if len(child.ChildElements()) > 0 {
			flattenInto(child, out)
			continue
		}
		out[child.Tag] = strings.TrimSpace(child.Text())
	}
}
