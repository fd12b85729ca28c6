package docxfill

import "strings"

const (
	vMergeRestart  = `<w:vMerge w:val="restart"`
	vMergeContinue = `<w:vMerge w:val="continue"`
	vMergeImplicit = `<w:vMerge/>`
)

// CloneRow locates the table row enclosing the first occurrence of the
// placeholder and replaces it with count copies, rewriting every ${x} in
// copy i to ${x#i}. A row opening a vertical-merge span is extended over
// every following row that continues the merge, and the whole span is
// cloned as one unit. The original row text is discarded: exactly count
// copies remain.
//
// A placeholder fragmented across formatting runs by an editor is not
// found and yields a NotFoundError.
func (t *Template) CloneRow(search string, count int) error {
	macro := normalizeMacro(search)

	pos := strings.Index(t.document, macro)
	if pos < 0 {
		return NewNotFoundError("placeholder", macro)
	}

	rowStart := findRowStart(t.document, pos)
	if rowStart == 0 {
		return NewNotFoundError("row start", macro)
	}
	rowEnd := findRowEnd(t.document, pos)
	if rowEnd == 0 {
		return NewNotFoundError("row end", macro)
	}

	row := t.document[rowStart:rowEnd]
	if strings.Contains(row, vMergeRestart) {
		rowEnd = t.extendMergeSpan(rowEnd)
		row = t.document[rowStart:rowEnd]
	}

	var b strings.Builder
	b.Grow(len(t.document) + (count-1)*len(row))
	b.WriteString(t.document[:rowStart])
	for i := 1; i <= count; i++ {
		b.WriteString(indexClonedMacros(row, i))
	}
	b.WriteString(t.document[rowEnd:])
	t.document = b.String()

	t.log.Debug("cloned row for %s: %d bytes x %d", macro, len(row), count)
	return nil
}

// extendMergeSpan extends a vertical-merge span past rowEnd while each
// probed row carries an explicit or implicit merge-continue marker and
// returns the end of the span. It stops at the first non-continuing row or
// when no further row exists.
func (t *Template) extendMergeSpan(rowEnd int) int {
	probeEnd := rowEnd
	for {
		probeStart := probeEnd + 1
		if probeStart >= len(t.document) {
			break
		}

		probeEnd = findRowEnd(t.document, probeStart)
		if probeEnd == 0 {
			break
		}

		probe := t.document[probeStart:probeEnd]
		if !strings.Contains(probe, vMergeImplicit) && !strings.Contains(probe, vMergeContinue) {
			break
		}
		rowEnd = probeEnd
	}
	return rowEnd
}
