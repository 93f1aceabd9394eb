package terminology

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"github.com/gofhir/fhir/r4"
)

// FromR4ValueSet converts an R4 ValueSet. The expansion is preferred when
// present; otherwise compose.include is used. Includes without concepts
// become whole-system includes.
func FromR4ValueSet(vs *r4.ValueSet) (*ValueSet, error) {
	if vs == nil || vs.Url == nil {
		return nil, fmt.Errorf("valueset is nil or has no URL")
	}

	var includes []Include
	if vs.Expansion != nil && len(vs.Expansion.Contains) > 0 {
		bySystem := make(map[string]int)
		var walk func(contains []r4.ValueSetExpansionContains)
		walk = func(contains []r4.ValueSetExpansionContains) {
			for i := range contains {
				c := &contains[i]
				if c.System != nil && c.Code != nil {
					idx, ok := bySystem[*c.System]
					if !ok {
						idx = len(includes)
						bySystem[*c.System] = idx
						includes = append(includes, Include{System: *c.System})
					}
					includes[idx].Concepts = append(includes[idx].Concepts, Concept{Code: *c.Code, Display: deref(c.Display)})
				}
				walk(c.Contains)
			}
		}
		walk(vs.Expansion.Contains)
	} else if vs.Compose != nil {
		for i := range vs.Compose.Include {
			inc := &vs.Compose.Include[i]
			if inc.System == nil {
				continue
			}
			out := Include{System: *inc.System}
			for j := range inc.Concept {
				c := &inc.Concept[j]
				if c.Code == nil {
					continue
				}
				out.Concepts = append(out.Concepts, Concept{Code: *c.Code, Display: deref(c.Display)})
			}
			includes = append(includes, out)
		}
	}

	return NewValueSet(*vs.Url, "", includes...), nil
}

// FromR4CodeSystem converts an R4 CodeSystem into the value set of all its
// codes, flattening nested concepts. The value set shares the system URL.
func FromR4CodeSystem(cs *r4.CodeSystem) (*ValueSet, error) {
	if cs == nil || cs.Url == nil {
		return nil, fmt.Errorf("codesystem is nil or has no URL")
	}
	inc := Include{System: *cs.Url}
	var walk func(concepts []r4.CodeSystemConcept)
	walk = func(concepts []r4.CodeSystemConcept) {
		for i := range concepts {
			c := &concepts[i]
			if c.Code != nil {
				inc.Concepts = append(inc.Concepts, Concept{Code: *c.Code, Display: deref(c.Display)})
			}
			walk(c.Concept)
		}
	}
	walk(cs.Concept)
	return NewValueSet(*cs.Url, "", inc), nil
}

// ParseR4 decodes a ValueSet or CodeSystem JSON resource.
func ParseR4(data []byte) (*ValueSet, error) {
	rt, err := jsonparser.GetString(data, "resourceType")
	if err != nil {
		return nil, fmt.Errorf("missing resourceType: %w", err)
	}
	switch rt {
	case "ValueSet":
		var vs r4.ValueSet
		if err := json.Unmarshal(data, &vs); err != nil {
			return nil, fmt.Errorf("failed to parse ValueSet: %w", err)
		}
		return FromR4ValueSet(&vs)
	case "CodeSystem":
		var cs r4.CodeSystem
		if err := json.Unmarshal(data, &cs); err != nil {
			return nil, fmt.Errorf("failed to parse CodeSystem: %w", err)
		}
		return FromR4CodeSystem(&cs)
	default:
		return nil, fmt.Errorf("unsupported resourceType: %s", rt)
	}
}

// Load parses an R4 ValueSet or CodeSystem and adds it to the registry.
func (r *Registry) Load(data []byte) (*ValueSet, error) {
	vs, err := ParseR4(data)
	if err != nil {
		return nil, err
	}
	if err := r.Add(vs); err != nil {
		return nil, err
	}
	return vs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
