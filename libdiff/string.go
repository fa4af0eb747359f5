package libdiff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/valu/value"
)

// DiffString diffs two strings as text. When most of the text changed the
// result is a plain replace.
func DiffString(from, to value.Value) (value.Value, bool) {
	fs, _ := from.AsString()
	ts, _ := to.AsString()
	if fs == ts {
		return value.Value{}, false
	}
	dmp := diffpatch.New()
	multiLine := strings.Contains(fs, "\n") && strings.Contains(ts, "\n")
	diffs := dmp.DiffMain(fs, ts, multiLine)
	size := 0
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			size += len(diffs[i].Text)
		}
	}
	if size > min(len(fs), len(ts))/2 {
		return MakeDiff(from, to), true
	}
	patches := dmp.PatchMake(fs, diffs)
	return node(StringKey, value.FromString(dmp.PatchToText(patches))), true
}

func patchString(doc value.Value, text string) (value.Value, error) {
	s, ok := doc.AsString()
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s applied to %s", ErrConflict, StringKey, doc.Type())
	}
	dmp := diffpatch.New()
	// exact application only
	dmp.MatchThreshold = 0
	dmp.PatchDeleteThreshold = 0
	patches, err := dmp.PatchFromText(text)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrBadDiff, err)
	}
	res, applied := dmp.PatchApply(patches, s)
	for i, ok := range applied {
		if !ok {
			return value.Value{}, fmt.Errorf("%w: hunk %d of string patch failed", ErrConflict, i)
		}
	}
	return value.FromString(res), nil
}

// reverseStringPatch swaps the sides of a textual patch: hunk headers
// exchange their ranges and added lines become removed lines.
func reverseStringPatch(text string) (string, error) {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		switch line[0] {
		case '@':
			var r1, r2 string
			if _, err := fmt.Sscanf(line, "@@ -%s +%s @@", &r1, &r2); err != nil {
				return "", fmt.Errorf("%w: bad hunk header %q", ErrBadDiff, line)
			}
			fmt.Fprintf(&b, "@@ -%s +%s @@\n", r2, r1)
		case '+':
			b.WriteString("-" + line[1:])
		case '-':
			b.WriteString("+" + line[1:])
		default:
			b.WriteString(line)
		}
	}
	return b.String(), nil
}
