package ir

import "github.com/jot-format/go-jot/ir/cpath"

// CommentKind distinguishes line comments from block comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// Placement says where a comment sits relative to the path it names.
type Placement int

const (
	// Leading comments come before the member or element at Path.
	Leading Placement = iota
	// Trailing comments share the line the value at Path ends on.
	Trailing
	// Dangling comments sit inside the container at Path after its
	// last member or element.
	Dangling
	// Footer comments follow the root value. Path is the root.
	Footer
)

func (p Placement) String() string {
	return map[Placement]string{
		Leading:  "leading",
		Trailing: "trailing",
		Dangling: "dangling",
		Footer:   "footer",
	}[p]
}

// Comment is one source comment. Comments never live inside Node: parse
// returns them beside the tree, and encode weaves them back in by
// resolving Path against whatever tree it is handed. Mutating the tree
// can therefore strand a comment, which encode reports rather than
// failing.
type Comment struct {
	Kind      CommentKind
	Marker    string // "//", "#", or "/*"
	Text      string // body without delimiters, trimmed
	Placement Placement
	Path      cpath.Path

	// 1-based source position, zero when built by hand.
	Line, Col int
}
