// Package terminology holds the code systems and value sets that coded
// fields are bound to, plus a hook for an external terminology service.
package terminology

import (
	"strings"
	"sync"
)

// Code is one coded value pulled out of a record: a bare code, a Coding, or
// one coding of a CodeableConcept. System is empty for bare codes.
type Code struct {
	System  string
	Code    string
	Display string
}

// Concept is a code with its display text.
type Concept struct {
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}

// Include selects codes from one system. An include without concepts stands
// for the whole system, which is too large to enumerate locally.
type Include struct {
	System   string    `json:"system"`
	Concepts []Concept `json:"concept,omitempty"`
}

// Membership is the outcome of a local value-set lookup.
type Membership int

// Membership outcomes.
const (
	NotMember Membership = iota
	Member
	// Undetermined means the code's system is included wholesale and only an
	// external terminology service can answer.
	Undetermined
)

// String returns the outcome name.
func (m Membership) String() string {
	switch m {
	case Member:
		return "member"
	case Undetermined:
		return "undetermined"
	default:
		return "not-member"
	}
}

// ValueSet is a (system URI -> allowed codes) map identified by a canonical URL.
type ValueSet struct {
	URL      string    `json:"url"`
	Name     string    `json:"name,omitempty"`
	Includes []Include `json:"include"`

	once  sync.Once
	codes map[string]map[string]string
	whole map[string]bool
}

// NewValueSet builds a value set from its includes.
func NewValueSet(url, name string, includes ...Include) *ValueSet {
	return &ValueSet{URL: url, Name: name, Includes: includes}
}

// Codes includes the listed codes of system.
func Codes(system string, codes ...string) Include {
	inc := Include{System: system, Concepts: make([]Concept, len(codes))}
	for i, c := range codes {
		inc.Concepts[i] = Concept{Code: c}
	}
	return inc
}

// Concepts includes the listed concepts of system.
func Concepts(system string, concepts ...Concept) Include {
	return Include{System: system, Concepts: concepts}
}

// WholeSystem includes every code of system.
func WholeSystem(system string) Include {
	return Include{System: system}
}

func (vs *ValueSet) index() {
	vs.once.Do(vs.build)
}

func (vs *ValueSet) build() {
	vs.codes = make(map[string]map[string]string)
	vs.whole = make(map[string]bool)
	for _, inc := range vs.Includes {
		if len(inc.Concepts) == 0 {
			vs.whole[inc.System] = true
			continue
		}
		m := vs.codes[inc.System]
		if m == nil {
			m = make(map[string]string, len(inc.Concepts))
			vs.codes[inc.System] = m
		}
		for _, c := range inc.Concepts {
			m[c.Code] = c.Display
		}
	}
}

// Check looks a code up. An empty system matches the code in any included
// system, which is how bare `code` fields are bound.
func (vs *ValueSet) Check(system, code string) Membership {
	vs.index()
	if system == "" {
		for _, m := range vs.codes {
			if _, ok := m[code]; ok {
				return Member
			}
		}
		if len(vs.whole) > 0 {
			return Undetermined
		}
		return NotMember
	}
	if m, ok := vs.codes[system]; ok {
		if _, ok := m[code]; ok {
			return Member
		}
	}
	if vs.whole[system] {
		return Undetermined
	}
	return NotMember
}

// Contains reports definite membership.
func (vs *ValueSet) Contains(system, code string) bool {
	return vs.Check(system, code) == Member
}

// HasSystem reports whether system is one of the included systems.
func (vs *ValueSet) HasSystem(system string) bool {
	vs.index()
	if _, ok := vs.codes[system]; ok {
		return true
	}
	return vs.whole[system]
}

// Enumerated reports whether the value set lists at least one code locally.
func (vs *ValueSet) Enumerated() bool {
	vs.index()
	return len(vs.codes) > 0
}

// Systems returns the included systems in declaration order.
func (vs *ValueSet) Systems() []string {
	seen := make(map[string]bool, len(vs.Includes))
	var out []string
	for _, inc := range vs.Includes {
		if !seen[inc.System] {
			seen[inc.System] = true
			out = append(out, inc.System)
		}
	}
	return out
}

// AllCodes returns every locally listed code in declaration order.
func (vs *ValueSet) AllCodes() []Code {
	var out []Code
	for _, inc := range vs.Includes {
		for _, c := range inc.Concepts {
			out = append(out, Code{System: inc.System, Code: c.Code, Display: c.Display})
		}
	}
	return out
}

// Display returns the display text of a listed code.
func (vs *ValueSet) Display(system, code string) (string, bool) {
	vs.index()
	if m, ok := vs.codes[system]; ok {
		d, ok := m[code]
		return d, ok
	}
	return "", false
}

// stripVersion removes version from a canonical URL ("url|4.0.1" -> "url").
func stripVersion(url string) string {
	if idx := strings.LastIndex(url, "|"); idx != -1 {
		return url[:idx]
	}
	return url
}
