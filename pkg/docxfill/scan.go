package docxfill

import "strings"

// Structural region scanning over raw part XML. Regions are located by
// their enclosing tags with plain text searches, never a parsed tree, so
// everything outside the region survives byte-for-byte.

// findTagStart returns the offset of the nearest opening <tag ...> or
// <tag> at or before offset, or 0 when none precedes it. Callers treat 0
// as not found; real parts always begin with an XML declaration, so no
// structural tag can legitimately start at offset 0.
func findTagStart(xml, tag string, offset int) int {
	if offset > len(xml) {
		offset = len(xml)
	}

	idx := strings.LastIndex(xml[:offset], "<"+tag+" ")
	if plain := strings.LastIndex(xml[:offset], "<"+tag+">"); plain > idx {
		idx = plain
	}
	if idx < 0 {
		return 0
	}
	return idx
}

// findTagEnd returns the offset just past the nearest closing </tag> at or
// after offset, or 0 when none follows.
func findTagEnd(xml, tag string, offset int) int {
	if offset > len(xml) {
		return 0
	}

	closing := "</" + tag + ">"
	idx := strings.Index(xml[offset:], closing)
	if idx < 0 {
		return 0
	}
	return offset + idx + len(closing)
}

// findRowStart returns the offset of the table row opening the region
// around offset, or 0 when no row precedes it.
func findRowStart(xml string, offset int) int {
	return findTagStart(xml, "w:tr", offset)
}

// findRowEnd returns the offset just past the table row closing the region
// around offset, or 0 when no row end follows.
func findRowEnd(xml string, offset int) int {
	return findTagEnd(xml, "w:tr", offset)
}
