package docxfill

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	macroOpen  = "${"
	macroClose = "}"
)

// splicedMacroRe matches a literal ${...} occurrence that a document editor
// has spliced with formatting run fragments, either between the $ and the
// brace or inside the body. Lazy quantifiers keep the match from crossing
// into a following placeholder.
var splicedMacroRe = regexp.MustCompile(`\$(?:\{|[^{$]*?>\{)[^}$]*?\}`)

// markupFragmentRe matches a single markup tag inside a spliced macro
var markupFragmentRe = regexp.MustCompile(`<[^>]*>`)

// xmlEscaper escapes markup-significant characters in replacement values
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// normalizeMacro wraps a bare search term as ${term}. A term that already
// carries both delimiters is used as-is.
func normalizeMacro(search string) string {
	if !strings.HasPrefix(search, macroOpen) && !strings.HasSuffix(search, macroClose) {
		return macroOpen + search + macroClose
	}
	return search
}

// mendSplicedMacros strips markup fragments spliced inside literal ${...}
// occurrences, so that later literal searches operate on logical
// placeholder text. The mended text is kept.
func mendSplicedMacros(text string) string {
	return splicedMacroRe.ReplaceAllStringFunc(text, func(match string) string {
		return markupFragmentRe.ReplaceAllString(match, "")
	})
}

// prepareReplacement coerces a replacement value to valid UTF-8 and
// escapes markup-significant characters.
func prepareReplacement(value string) string {
	return xmlEscaper.Replace(strings.ToValidUTF8(value, ""))
}

// setValueInPart mends spliced macros in a part and substitutes up to
// limit occurrences of macro with replacement. A negative limit is
// unbounded. Pure transform; the replacement must already be escaped.
func setValueInPart(text, macro, replacement string, limit int) string {
	return strings.Replace(mendSplicedMacros(text), macro, replacement, limit)
}

// scanMacroNames returns every placeholder name in text, in order of
// appearance, using a non-greedy bracket scan: a body runs from ${ to the
// first following } and can never itself contain a closing brace.
func scanMacroNames(text string) []string {
	var names []string
	pos := 0
	for {
		open := strings.Index(text[pos:], macroOpen)
		if open < 0 {
			break
		}
		open += pos

		end := strings.Index(text[open+len(macroOpen):], macroClose)
		if end < 0 {
			break
		}
		end += open + len(macroOpen)

		names = append(names, text[open+len(macroOpen):end])
		pos = end + len(macroClose)
	}
	return names
}

// indexClonedMacros rewrites every ${x} in text to ${x#index} with the
// same non-greedy bracket scan used for discovery.
func indexClonedMacros(text string, index int) string {
	var b strings.Builder
	b.Grow(len(text))

	suffix := "#" + strconv.Itoa(index)
	pos := 0
	for {
		open := strings.Index(text[pos:], macroOpen)
		if open < 0 {
			break
		}
		open += pos

		end := strings.Index(text[open+len(macroOpen):], macroClose)
		if end < 0 {
			break
		}
		end += open + len(macroOpen)

		b.WriteString(text[pos:end])
		b.WriteString(suffix)
		b.WriteString(macroClose)
		pos = end + len(macroClose)
	}
	b.WriteString(text[pos:])
	return b.String()
}

// SetValue substitutes every occurrence of the placeholder in the document
// part and in every header and footer part. The search term may be given
// bare ("name") or wrapped ("${name}").
func (t *Template) SetValue(search, replacement string) {
	t.SetValueLimit(search, replacement, -1)
}

// SetValueLimit is SetValue with an occurrence limit. The limit applies
// independently to each part; a negative limit is unbounded.
func (t *Template) SetValueLimit(search, replacement string, limit int) {
	macro := normalizeMacro(search)
	prepared := prepareReplacement(replacement)

	for _, part := range t.partTexts() {
		*part = setValueInPart(*part, macro, prepared, limit)
	}
}

// Variables returns the distinct placeholder names found across the
// document, header and footer parts, each reported once in discovery
// order.
func (t *Template) Variables() []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range t.partTexts() {
		for _, name := range scanMacroNames(*part) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
