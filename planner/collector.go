package planner

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// builderEntry accumulates every contribution merged into one response key at one concrete type
// (spec §4.4: "two contributions with the same response key at the same concrete type are
// merged"). Arguments are taken from the first occurrence only; the spec does not define
// argument-merging semantics for repeated fields, so later contributions' arguments are ignored.
type builderEntry struct {
	fieldDef           *schema.FieldDef
	arguments          []*ast.Argument
	childSelectionSets []*ast.SelectionSet
}

// collector accumulates field-plan contributions across a selection tree. One collector instance
// is used per composite position; children get their own nested collector.
type collector struct {
	s         *schema.Schema
	fragments map[string]*ast.FragmentDefinition

	order   map[string][]string                    // concrete type name -> response keys, first-occurrence order
	entries map[string]map[string]*builderEntry     // concrete type name -> response key -> entry
}

func newCollector(s *schema.Schema, fragments map[string]*ast.FragmentDefinition) *collector {
	return &collector{
		s:         s,
		fragments: fragments,
		order:     map[string][]string{},
		entries:   map[string]map[string]*builderEntry{},
	}
}

// collect walks ss, contributing fields into c for every concrete type in possibleTypes (spec
// §4.4: a Field at enclosing type T contributes under its response key; a FragmentSpread or
// InlineFragment contributes only to the intersection of possibleTypes and its own `on` type's
// possible types).
func (c *collector) collect(ss *ast.SelectionSet, possibleTypes map[string]*schema.ObjectType) {
	if ss == nil {
		return
	}
	for _, sel := range ss.Selections {
		if shouldSkip(sel.SelectionDirectives()) {
			continue
		}
		switch sel := sel.(type) {
		case *ast.Field:
			for typeName, obj := range possibleTypes {
				fd := schema.FieldDefFor(c.s, obj, sel.Name.Name)
				c.addField(typeName, sel, fd)
			}
		case *ast.FragmentSpread:
			frag, ok := c.fragments[sel.FragmentName.Name]
			if !ok {
				continue
			}
			fragType := c.s.NamedType(frag.TypeCondition.Name.Name)
			if fragType == nil {
				continue
			}
			narrowed := intersectPossibleTypes(possibleTypes, schema.PossibleTypes(c.s, fragType))
			c.collect(frag.SelectionSet, narrowed)
		case *ast.InlineFragment:
			narrowed := possibleTypes
			if sel.TypeCondition != nil {
				t := c.s.NamedType(sel.TypeCondition.Name.Name)
				if t == nil {
					continue
				}
				narrowed = intersectPossibleTypes(possibleTypes, schema.PossibleTypes(c.s, t))
			}
			c.collect(sel.SelectionSet, narrowed)
		}
	}
}

func (c *collector) addField(typeName string, field *ast.Field, fd *schema.FieldDef) {
	key := field.ResponseKey()

	byKey := c.entries[typeName]
	if byKey == nil {
		byKey = map[string]*builderEntry{}
		c.entries[typeName] = byKey
	}

	e := byKey[key]
	if e == nil {
		e = &builderEntry{fieldDef: fd, arguments: field.Arguments}
		byKey[key] = e
		c.order[typeName] = append(c.order[typeName], key)
	}
	if field.SelectionSet != nil {
		e.childSelectionSets = append(e.childSelectionSets, field.SelectionSet)
	}
}

// build materializes the accumulated contributions into the per-concrete-type FieldPlan map,
// recursively planning each composite field's children from every selection set merged into it.
func (c *collector) build(possibleTypes map[string]*schema.ObjectType) map[string][]*FieldPlan {
	result := map[string][]*FieldPlan{}
	for typeName := range possibleTypes {
		var plans []*FieldPlan
		for _, key := range c.order[typeName] {
			e := c.entries[typeName][key]
			fp := &FieldPlan{Def: e.fieldDef, ResponseKey: key, Arguments: e.arguments}
			if e.fieldDef != nil && len(e.childSelectionSets) > 0 {
				childPossible := possibleTypesOfFieldType(c.s, e.fieldDef.Type)
				if len(childPossible) > 0 {
					child := newCollector(c.s, c.fragments)
					for _, css := range e.childSelectionSets {
						child.collect(css, childPossible)
					}
					fp.Children = child.build(childPossible)
				}
			}
			plans = append(plans, fp)
		}
		result[typeName] = plans
	}
	return result
}

func intersectPossibleTypes(a, b map[string]*schema.ObjectType) map[string]*schema.ObjectType {
	ret := map[string]*schema.ObjectType{}
	for name, obj := range a {
		if _, ok := b[name]; ok {
			ret[name] = obj
		}
	}
	return ret
}

// possibleTypesOfFieldType unwraps List/NonNull and resolves the composite possible-types set for
// a field's declared type; it returns nil for scalar/enum fields (no children to plan).
func possibleTypesOfFieldType(s *schema.Schema, t schema.TypeRef) map[string]*schema.ObjectType {
	named := schema.NamedOf(t)
	if named == nil || named.Named == nil || !schema.IsComposite(named.Named) {
		return nil
	}
	return schema.PossibleTypes(s, named.Named)
}
