// Package pathmatch splits request paths into segments and matches them
// against fixed shapes made of literal segments and parameter slots.
package pathmatch

import (
	"fmt"
	"strings"
)

// Split breaks a path on "/" and drops the empty segment produced by the
// leading slash. A trailing slash yields a trailing empty segment.
func Split(path string) []string {
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

type slot struct {
	literal string
	param   string
}

// Pattern is a path shape such as "/artists/{id}/albums". A parameter slot
// accepts any single segment, the empty one included.
type Pattern struct {
	raw   string
	slots []slot
}

type Params map[string]string

// Parse compiles a pattern. Parameter names must be unique; "{_}" is an
// anonymous slot whose value is not kept.
func Parse(pattern string) (Pattern, error) {
	if !strings.HasPrefix(pattern, "/") {
		return Pattern{}, fmt.Errorf("pattern %q must start with '/'", pattern)
	}
	p := Pattern{raw: pattern}
	seen := make(map[string]bool)
	for _, seg := range Split(pattern) {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			name := seg[1 : len(seg)-1]
			if name == "" {
				return Pattern{}, fmt.Errorf("pattern %q has an unnamed slot", pattern)
			}
			if name != "_" {
				if seen[name] {
					return Pattern{}, fmt.Errorf("pattern %q repeats parameter %q", pattern, name)
				}
				seen[name] = true
			}
			p.slots = append(p.slots, slot{param: name})
			continue
		}
		if strings.ContainsAny(seg, "{}") {
			return Pattern{}, fmt.Errorf("pattern %q has a malformed segment %q", pattern, seg)
		}
		p.slots = append(p.slots, slot{literal: seg})
	}
	return p, nil
}

func MustParse(pattern string) Pattern {
	p, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) String() string { return p.raw }

// Segments is the exact number of segments a matching path has.
func (p Pattern) Segments() int { return len(p.slots) }

// Match checks the segment count first, then every literal. On success it
// returns the named parameters.
func (p Pattern) Match(segments []string) (Params, bool) {
	if len(segments) != len(p.slots) {
		return nil, false
	}
	params := make(Params)
	for i, s := range p.slots {
		if s.param == "" {
			if segments[i] != s.literal {
				return nil, false
			}
			continue
		}
		if s.param != "_" {
			params[s.param] = segments[i]
		}
	}
	return params, true
}

// MatchPath is Match applied to Split(path).
func (p Pattern) MatchPath(path string) (Params, bool) {
	return p.Match(Split(path))
}
