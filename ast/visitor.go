package ast

import "github.com/mf2tools/mf2core/internal/invariant"

// VisitAction is returned by an Enter callback to control traversal.
type VisitAction int

const (
	// Continue descends into the node's children.
	Continue VisitAction = iota
	// SkipChildren visits the node itself but not its children.
	SkipChildren
	// Stop ends the walk immediately.
	Stop
)

// EnterFunc is called once per node, in source order, before its children.
// It receives the scratch value threaded through the walk and returns the
// action to take plus the (possibly updated) scratch value to carry to
// this node's children and its Exit call; siblings still receive the
// parent's scratch value.
type EnterFunc func(n Node, scratch any) (VisitAction, any)

// ExitFunc is called once per node, after its children have been visited.
type ExitFunc func(n Node, scratch any)

// Walk performs a depth-first, source-order traversal of root, threading
// scratch through every Enter/Exit call. It returns false if the walk was
// stopped early via VisitAction Stop.
func Walk(root Node, scratch any, enter EnterFunc, exit ExitFunc) bool {
	if root == nil {
		return true
	}
	action, next := enter(root, scratch)
	switch action {
	case Stop:
		return false
	case SkipChildren:
		if exit != nil {
			exit(root, next)
		}
		return true
	}

	for _, child := range Children(root) {
		invariant.Invariant(root.Span().Covers(child.Span()),
			"parent span %+v must cover child span %+v (%T -> %T)", root.Span(), child.Span(), root, child)
		if !Walk(child, next, enter, exit) {
			return false
		}
	}
	if exit != nil {
		exit(root, next)
	}
	return true
}

// Children returns n's direct children in source order. Nil children
// (e.g. a declaration value the parser could not recover) are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil || isNilNode(c) {
			return
		}
		out = append(out, c)
	}

	switch v := n.(type) {
	case *SimpleMessage:
		add(v.Pattern)
	case *ComplexMessage:
		for _, d := range v.Declarations {
			add(d)
		}
		add(v.Body)
	case *InputDeclaration:
		add(v.VariableExpr)
	case *LocalDeclaration:
		add(v.Variable)
		add(v.Value)
	case *ReservedStatement:
		for _, b := range v.Body {
			add(b)
		}
	case *Matcher:
		for _, s := range v.Selectors {
			add(s)
		}
		for _, variant := range v.Variants {
			add(variant)
		}
	case *Variant:
		for _, k := range v.Keys {
			add(k)
		}
		add(v.Value)
	case *QuotedPattern:
		for _, p := range v.Parts {
			add(p)
		}
	case *Pattern:
		for _, p := range v.Parts {
			add(p)
		}
	case *LiteralExpr:
		add(v.Literal)
		add(v.Annotation)
	case *VariableExpr:
		add(v.Variable)
		add(v.Annotation)
	case *AnnotationExpr:
		add(v.Annotation)
	case *Function:
		add(v.Identifier)
		for _, o := range v.Options {
			add(o)
		}
	case *Option:
		add(v.Name)
		add(v.Value)
	case *QuotedLiteral:
		for _, p := range v.Parts {
			add(p)
		}
	}
	return out
}

// isNilNode reports whether c holds a nil concrete pointer behind a non-nil
// interface value (e.g. a *Variable(nil) stored in a Node), which Children
// must treat the same as a genuinely absent child.
func isNilNode(c Node) bool {
	switch v := c.(type) {
	case *Variable:
		return v == nil
	case *Identifier:
		return v == nil
	case *QuotedPattern:
		return v == nil
	case *Pattern:
		return v == nil
	case *Function:
		return v == nil
	case *PrivateUseAnnotation:
		return v == nil
	case *ReservedAnnotationNode:
		return v == nil
	case *Option:
		return v == nil
	case *QuotedLiteral:
		return v == nil
	case *UnquotedLiteral:
		return v == nil
	case *LiteralExpr:
		return v == nil
	case *VariableExpr:
		return v == nil
	case *AnnotationExpr:
		return v == nil
	default:
		return false
	}
}

// FindSmallest returns the smallest node in root's tree whose span
// contains offset, breaking ties by preferring the deeper (more nested)
// node. It returns nil if no node's span contains offset.
func FindSmallest(root Node, offset int) Node {
	var best Node
	Walk(root, nil, func(n Node, _ any) (VisitAction, any) {
		if !n.Span().Contains(offset) {
			return SkipChildren, nil
		}
		best = n
		return Continue, nil
	}, nil)
	return best
}
