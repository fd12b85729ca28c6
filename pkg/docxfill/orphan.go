package docxfill

import "strings"

// RemoveOrphanTags strips every remaining ${name} marker from the document
// part by deduplicating the captured names and removing the marker
// paragraphs for each. Close markers ${/name} fold into their block name,
// so a leftover pair whose body was already removed disappears entirely.
//
// SaveAs runs this automatically, exactly once, before the named save; the
// plain working-file Save never does.
//
// A stray scalar placeholder that was never part of a block loses its
// whole paragraph here, because RemoveTag deletes the paragraph around the
// opening marker it finds.
func (t *Template) RemoveOrphanTags() {
	seen := make(map[string]bool)

	for _, name := range scanMacroNames(t.document) {
		name = strings.TrimPrefix(name, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		t.log.Debug("removing orphan tag %s", name)
		t.RemoveTag(name)
	}
}
