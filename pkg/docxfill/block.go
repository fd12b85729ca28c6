package docxfill

import "strings"

// Named block operations. A block named "foo" spans from the start of the
// paragraph containing the literal marker ${foo} through the end of the
// paragraph containing ${/foo}, matched per part, case-sensitively and
// non-greedily. Same-named nested blocks are not supported; only the first
// matching pair at a given index is addressable.
//
// Each operation exists as a pure text-to-text transform plus a thin
// method applying it to the stored document part.

func openMarker(name string) string {
	return macroOpen + name + macroClose
}

func closeMarker(name string) string {
	return macroOpen + "/" + name + macroClose
}

// blockSpan describes one matched block: the whole region from the start
// of the opening-marker paragraph to the end of the closing-marker
// paragraph, and the inner content strictly between the two paragraphs.
type blockSpan struct {
	start, end           int
	innerStart, innerEnd int
}

// findBlocks returns every disjoint open/close paragraph pair for name, in
// document order.
func findBlocks(xml, name string) []blockSpan {
	var spans []blockSpan

	pos := 0
	for {
		open := strings.Index(xml[pos:], openMarker(name))
		if open < 0 {
			break
		}
		open += pos

		paraStart := findTagStart(xml, "w:p", open)
		paraEnd := findTagEnd(xml, "w:p", open)
		if paraEnd == 0 {
			break
		}

		// The close marker must live in a later paragraph; the inner
		// content is strictly between the two marker paragraphs.
		close := strings.Index(xml[paraEnd:], closeMarker(name))
		if close < 0 {
			break
		}
		close += paraEnd

		closeParaStart := findTagStart(xml, "w:p", close)
		closeParaEnd := findTagEnd(xml, "w:p", close)
		if closeParaEnd == 0 {
			break
		}

		spans = append(spans, blockSpan{
			start:      paraStart,
			end:        closeParaEnd,
			innerStart: paraEnd,
			innerEnd:   closeParaStart,
		})
		pos = closeParaEnd
	}
	return spans
}

// countBlocksIn returns the number of open/close paragraph pairs for name
func countBlocksIn(xml, name string) int {
	return len(findBlocks(xml, name))
}

// cloneBlockIn extracts the inner content of the instance-th block and, if
// replaceInPlace, substitutes the first whole open-to-close span with
// clones+1 concatenated copies of it (exactly one substitution, regardless
// of which instance was extracted). When the instance does not exist the
// input is returned untouched with ok false.
func cloneBlockIn(xml, name string, clones int, replaceInPlace bool, instance int) (out, inner string, ok bool) {
	spans := findBlocks(xml, name)
	if instance < 0 || instance >= len(spans) {
		return xml, "", false
	}

	inner = xml[spans[instance].innerStart:spans[instance].innerEnd]
	if replaceInPlace {
		first := spans[0]
		xml = xml[:first.start] + strings.Repeat(inner, clones+1) + xml[first.end:]
	}
	return xml, inner, true
}

// replaceBlockIn replaces the first whole open-to-close span for name with
// content. Pure transform; text without a matching pair is returned
// untouched.
func replaceBlockIn(xml, name, content string) string {
	spans := findBlocks(xml, name)
	if len(spans) == 0 {
		return xml
	}
	return xml[:spans[0].start] + content + xml[spans[0].end:]
}

// removeTagIn deletes the first paragraph containing the opening marker
// and the first paragraph containing the closing marker, each located
// independently, preserving the content between them.
func removeTagIn(xml, name string) string {
	type span struct {
		start, end int
	}

	paragraphAround := func(marker string) (span, bool) {
		idx := strings.Index(xml, marker)
		if idx < 0 {
			return span{}, false
		}
		end := findTagEnd(xml, "w:p", idx)
		if end == 0 {
			return span{}, false
		}
		return span{findTagStart(xml, "w:p", idx), end}, true
	}

	openSpan, openOK := paragraphAround(openMarker(name))
	closeSpan, closeOK := paragraphAround(closeMarker(name))

	// Delete the later paragraph first so the earlier offsets stay valid.
	// Both markers in one paragraph collapse to a single deletion.
	if openOK && closeOK && openSpan == closeSpan {
		closeOK = false
	}
	if openOK && closeOK && closeSpan.start < openSpan.start {
		openSpan, closeSpan = closeSpan, openSpan
	}
	if closeOK {
		xml = xml[:closeSpan.start] + xml[closeSpan.end:]
	}
	if openOK {
		xml = xml[:openSpan.start] + xml[openSpan.end:]
	}
	return xml
}

// deleteTagIn removes every literal token starting with ${name up to the
// next closing brace, leaving surrounding markup untouched. The match is
// prefix-bounded, so names sharing the prefix are also removed.
func deleteTagIn(xml, name string) string {
	prefix := macroOpen + name
	for {
		idx := strings.Index(xml, prefix)
		if idx < 0 {
			break
		}
		end := strings.Index(xml[idx:], macroClose)
		if end < 0 {
			break
		}
		xml = xml[:idx] + xml[idx+end+len(macroClose):]
	}
	return xml
}

// CountBlocks returns the number of open/close paragraph pairs for name in
// the document part.
func (t *Template) CountBlocks(name string) int {
	return countBlocksIn(t.document, name)
}

// CloneBlock extracts the inner content of the instance-th block for name
// and, when replaceInPlace is set, replaces the first whole block span
// with clones+1 concatenated copies of that content, markers discarded.
// It returns the extracted inner content, with ok false and no mutation
// when the instance does not exist.
func (t *Template) CloneBlock(name string, clones int, replaceInPlace bool, instance int) (inner string, ok bool) {
	t.document, inner, ok = cloneBlockIn(t.document, name, clones, replaceInPlace, instance)
	return inner, ok
}

// ReplaceBlock replaces the first whole block span for name in the
// document part with content and returns the new part text.
func (t *Template) ReplaceBlock(name, content string) string {
	t.document = replaceBlockIn(t.document, name, content)
	return t.document
}

// ReplaceBlockIn is the pure form of ReplaceBlock over arbitrary text
func ReplaceBlockIn(xml, name, content string) string {
	return replaceBlockIn(xml, name, content)
}

// DeleteBlock removes the first whole block span for name, markers and
// inner content included.
func (t *Template) DeleteBlock(name string) string {
	return t.ReplaceBlock(name, "")
}

// RemoveTag deletes the opening-marker and closing-marker paragraphs for
// name in the document part, preserving the inner content.
func (t *Template) RemoveTag(name string) string {
	t.document = removeTagIn(t.document, name)
	return t.document
}

// RemoveTagIn is the pure form of RemoveTag over arbitrary text
func RemoveTagIn(xml, name string) string {
	return removeTagIn(xml, name)
}

// DeleteTag removes the literal ${name...} tokens from the document part,
// leaving surrounding markup untouched.
func (t *Template) DeleteTag(name string) string {
	t.document = deleteTagIn(t.document, name)
	return t.document
}

// DeleteTagIn is the pure form of DeleteTag over arbitrary text
func DeleteTagIn(xml, name string) string {
	return deleteTagIn(xml, name)
}
