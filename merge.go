package jot

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/diag"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/format"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

// Merge applies patch to base with JSON merge patch semantics
// (RFC 7386): objects merge member by member, a null member value
// deletes, anything else replaces. The merge runs over the JSON
// projections of both documents, so duplicate keys fold to their last
// value and merged objects come back in key order. Comments from base
// are re-resolved against the merged tree; a comment whose member the
// patch removed is dropped with an UnresolvedComment warning.
func Merge(base, patch []byte) ([]byte, diag.List, error) {
	baseRes := parse.Parse(base)
	patchRes := parse.Parse(patch, parse.ParseComments(false))
	var diags diag.List
	diags = append(diags, baseRes.Diags...)
	diags = append(diags, patchRes.Diags...)

	baseJSON, err := jsonBytes(baseRes.Root)
	if err != nil {
		return nil, diags, err
	}
	patchJSON, err := jsonBytes(patchRes.Root)
	if err != nil {
		return nil, diags, err
	}
	merged, err := jsonpatch.MergePatch(baseJSON, patchJSON)
	if err != nil {
		return nil, diags, fmt.Errorf("merge patch: %w", err)
	}
	if debug.Encode() {
		debug.Logf("merge: %d base comments to re-resolve against %s\n",
			len(baseRes.Comments), merged)
	}
	mergedRes := parse.Parse(merged)
	diags = append(diags, mergedRes.Diags...)

	buf := bytes.NewBuffer(nil)
	encDiags, err := encode.Encode(mergedRes.Root, buf,
		encode.EncodeComments(baseRes.Comments))
	diags = append(diags, encDiags...)
	if err != nil {
		return nil, diags, err
	}
	return buf.Bytes(), diags, nil
}

func jsonBytes(y *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := encode.Encode(y, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
