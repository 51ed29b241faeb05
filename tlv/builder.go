package tlv

import (
	"codello.dev/x690"
)

// Builder accumulates the forest of nodes produced during a decode run. It
// tracks the chain of still-open constructed ancestors so that each new
// element lands in the right container: as a child of the deepest open
// constructed node, or as a new root.
//
// A Builder is consumed by [Builder.TakeResults]; any use afterwards is a
// programmer error.
type Builder struct {
	roots []*x690.Node
	open  []*x690.Node // open ancestors, deepest last
	done  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return new(Builder)
}

// AddIdentifier starts a new element with the given identifier and returns
// its node. Open ancestors that can no longer accept children (primitive
// nodes and constructed nodes whose length budget is exhausted) are closed
// first. The new element becomes a child of the deepest remaining open node,
// or a new root if none remains, and is itself left open.
func (b *Builder) AddIdentifier(id x690.Identifier) *x690.Node {
	b.check()
	for len(b.open) > 0 {
		top := b.open[len(b.open)-1]
		if top.Identifier.Form != x690.FormPrimitive && !top.LengthLimitReached() {
			break
		}
		b.open = b.open[:len(b.open)-1]
	}

	node := x690.NewNode(id)
	if len(b.open) > 0 {
		parent := b.open[len(b.open)-1]
		children, _ := parent.Content.(x690.Constructed)
		parent.Content = append(children, node)
	} else {
		b.roots = append(b.roots, node)
	}
	b.open = append(b.open, node)
	return node
}

// AddLength assigns the parsed length to the innermost open element. If no
// element is open, [ErrMissingOwner] is returned.
func (b *Builder) AddLength(length int) error {
	b.check()
	if len(b.open) == 0 {
		return ErrMissingOwner
	}
	b.open[len(b.open)-1].Length = length
	return nil
}

// AddContent assigns the parsed content to the innermost open element. If no
// element is open, [ErrMissingOwner] is returned.
func (b *Builder) AddContent(c x690.Content) error {
	b.check()
	if len(b.open) == 0 {
		return ErrMissingOwner
	}
	b.open[len(b.open)-1].Content = c
	return nil
}

// Current returns the innermost open element, or nil if none is open. The
// decoder uses this to inspect the identifier and length of the element whose
// content octets are being parsed.
func (b *Builder) Current() *x690.Node {
	b.check()
	if len(b.open) == 0 {
		return nil
	}
	return b.open[len(b.open)-1]
}

// TakeResults closes all open elements and returns the roots of the forest in
// stream order. The Builder is consumed.
func (b *Builder) TakeResults() []*x690.Node {
	b.check()
	b.done = true
	b.open = nil
	roots := b.roots
	b.roots = nil
	return roots
}

func (b *Builder) check() {
	if b.done {
		panic("tlv: illegal use of Builder after TakeResults()")
	}
}
