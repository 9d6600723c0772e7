// Package ignore handles //minimalactions:ignore directives.
//
// A directive suppresses diagnostics reported on its own line or the line
// below it. Because a handler may be declared far from the route that maps
// it, a directive next to the mapping call also covers every diagnostic
// produced for that call:
//
//	//minimalactions:ignore actionresult - migrated in v2
//	routing.MapGet(app, "/legacy", legacyHandler)
package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

// Checker names a checker a directive can target.
type Checker string

// Valid checker names.
const (
	Binding      Checker = "binding"
	ActionResult Checker = "actionresult"
)

// Directive is the comment prefix recognized by [Collect].
const Directive = "minimalactions:ignore"

// Checkers returns all valid checker names.
func Checkers() []Checker {
	return []Checker{Binding, ActionResult}
}

// Enabled reports which checkers run in the current pass.
type Enabled map[Checker]bool

type directive struct {
	pos token.Pos
	// targets is empty for a directive covering every checker.
	targets []Checker
	used    map[Checker]bool
}

func (d *directive) covers(c Checker) bool {
	return len(d.targets) == 0 || slices.Contains(d.targets, c)
}

type lineKey struct {
	file string
	line int
}

// Set holds the directives of one pass.
// It records which directives suppressed something, so it is not safe for
// concurrent use.
type Set struct {
	fset   *token.FileSet
	byLine map[lineKey]*directive
}

// Collect gathers the directives in files.
func Collect(fset *token.FileSet, files []*ast.File) *Set {
	s := &Set{fset: fset, byLine: make(map[lineKey]*directive)}

	for _, file := range files {
		for _, cg := range file.Comments {
			for _, c := range cg.List {
				targets, ok := parse(c.Text)
				if !ok {
					continue
				}
				p := fset.Position(c.Pos())
				s.byLine[lineKey{p.Filename, p.Line}] = &directive{
					pos:     c.Pos(),
					targets: targets,
					used:    make(map[Checker]bool),
				}
			}
		}
	}

	return s
}

// Suppressed reports whether a diagnostic of checker c at pos, produced for
// the mapping call at call, is covered by a directive. The directive that
// covers it is marked as used.
func (s *Set) Suppressed(c Checker, pos, call token.Pos) bool {
	return s.suppressedAt(c, pos) || s.suppressedAt(c, call)
}

func (s *Set) suppressedAt(c Checker, pos token.Pos) bool {
	if !pos.IsValid() {
		return false
	}

	p := s.fset.Position(pos)
	for _, line := range []int{p.Line, p.Line - 1} {
		d, ok := s.byLine[lineKey{p.Filename, line}]
		if ok && d.covers(c) {
			d.used[c] = true
			return true
		}
	}

	return false
}

// Unused is a directive, or part of one, that suppressed nothing.
type Unused struct {
	Pos token.Pos
	// Checkers lists the unused targets; it is empty when the directive
	// covers every checker and none of them used it.
	Checkers []Checker
}

// Unused returns the directives that suppressed nothing, in source order.
// Targets naming a disabled or unknown checker are always unused.
func (s *Set) Unused(enabled Enabled) []Unused {
	var unused []Unused

	for _, d := range s.byLine {
		if len(d.targets) == 0 {
			if !usedByAny(d, enabled) {
				unused = append(unused, Unused{Pos: d.pos})
			}
			continue
		}

		var idle []Checker
		for _, c := range d.targets {
			if !enabled[c] || !d.used[c] {
				idle = append(idle, c)
			}
		}
		if len(idle) > 0 {
			unused = append(unused, Unused{Pos: d.pos, Checkers: idle})
		}
	}

	slices.SortFunc(unused, func(a, b Unused) int { return cmp.Compare(a.Pos, b.Pos) })

	return unused
}

func usedByAny(d *directive, enabled Enabled) bool {
	for c := range enabled {
		if enabled[c] && d.used[c] {
			return true
		}
	}

	return false
}

// parse reads one comment. It reports false if the comment is not a
// directive, and returns no targets for a directive covering every checker.
//
// Accepted forms:
//
//	//minimalactions:ignore
//	//minimalactions:ignore binding
//	//minimalactions:ignore binding,actionresult
//	//minimalactions:ignore - reason
//	//minimalactions:ignore actionresult - reason
//	//minimalactions:ignore binding // reason
func parse(text string) ([]Checker, bool) {
	body := strings.TrimSpace(strings.TrimPrefix(text, "//"))

	rest, ok := strings.CutPrefix(body, Directive)
	if !ok {
		return nil, false
	}
	// "minimalactions:ignored" is another word.
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false
	}

	// Checker names never contain '-' or '/', so a reason starts at the
	// first of either.
	list := rest
	if i := strings.IndexAny(list, "-/"); i >= 0 {
		list = list[:i]
	}

	var targets []Checker
	for name := range strings.SplitSeq(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			targets = append(targets, Checker(name))
		}
	}

	return targets, true
}
