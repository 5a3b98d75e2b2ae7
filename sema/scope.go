package sema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/llshader/llsl"
)

// Scope maps identifiers to declared types. Scopes form a chain from the
// innermost block out to the program root.
type Scope struct {
	parent  *Scope
	symbols map[string]llsl.TokenKind
	depth   int
}

// NewScope creates a scope nested in parent. parent may be nil for the root.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		parent:  parent,
		symbols: make(map[string]llsl.TokenKind, 8),
	}
	if parent != nil {
		s.depth = parent.depth + 1
	}
	return s
}

// Parent returns the enclosing scope, nil for the root.
func (s *Scope) Parent() *Scope { return s.parent }

// Depth is 0 for the root scope and grows by one per nesting level.
func (s *Scope) Depth() int { return s.depth }

// Insert binds name to typ in this scope, replacing an existing binding.
func (s *Scope) Insert(name string, typ llsl.TokenKind) {
	s.symbols[name] = typ
}

// Lookup finds name in this scope and, when recursive, in the enclosing
// scopes.
func (s *Scope) Lookup(name string, recursive bool) (llsl.TokenKind, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if typ, ok := cur.symbols[name]; ok {
			return typ, true
		}
		if !recursive {
			break
		}
	}
	return llsl.TokenVoid, false
}

// LookupLocal finds name in this scope only.
func (s *Scope) LookupLocal(name string) (llsl.TokenKind, bool) {
	return s.Lookup(name, false)
}

// Len returns the number of names bound in this scope.
func (s *Scope) Len() int { return len(s.symbols) }

func (s *Scope) String() string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	if s.parent != nil {
		sb.WriteString(s.parent.String())
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "scope %d {", s.depth)
	for i, name := range names {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %s: %s", name, s.symbols[name])
	}
	sb.WriteString(" }")
	return sb.String()
}
