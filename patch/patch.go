// Package patch applies RFC 6902 JSON patches and RFC 7386 merge
// patches to value trees.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/parse"
	"github.com/signadot/jsontree/value"
)

// Apply applies the RFC 6902 patch document ops to doc and returns
// the patched tree.  doc is not modified.  Comments and spans are
// not carried through the patch round trip.
func Apply(doc, ops *value.Value) (*value.Value, error) {
	d, err := jsonpatch.DecodePatch([]byte(encode.Compact(ops)))
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	out, err := d.Apply([]byte(encode.Compact(doc)))
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return reparse(out)
}

// Merge applies the RFC 7386 merge patch mergeDoc to doc and returns
// the merged tree.
func Merge(doc, mergeDoc *value.Value) (*value.Value, error) {
	out, err := jsonpatch.MergePatch(
		[]byte(encode.Compact(doc)),
		[]byte(encode.Compact(mergeDoc)))
	if err != nil {
		return nil, fmt.Errorf("merging patch: %w", err)
	}
	return reparse(out)
}

func reparse(d []byte) (*value.Value, error) {
	root, err := parse.Parse(d, parse.AllowComments(false), parse.FailIfExtra(true))
	if err != nil {
		return nil, fmt.Errorf("reparsing patched document: %w", err)
	}
	return root, nil
}
