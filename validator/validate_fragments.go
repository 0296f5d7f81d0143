package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

// checkFragmentNameUniqueness is spec §4.3 check 11.
func checkFragmentNameUniqueness(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	var ret []*Error
	seen := map[string]bool{}
	for _, frag := range ast.Fragments(doc) {
		if seen[frag.Name.Name] {
			ret = append(ret, newError(frag.Name, "a fragment named `%s` already exists", frag.Name.Name))
		}
		seen[frag.Name.Name] = true
	}
	return ret
}

// checkUnusedFragments is spec §4.3 check 12.
func checkUnusedFragments(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	used := map[string]bool{}
	ast.Inspect(doc, func(node interface{}) bool {
		if spread, ok := node.(*ast.FragmentSpread); ok {
			used[spread.FragmentName.Name] = true
		}
		return true
	})

	var ret []*Error
	for _, frag := range ast.Fragments(doc) {
		if !used[frag.Name.Name] {
			ret = append(ret, newError(frag.Name, "unused fragment: %s", frag.Name.Name))
		}
	}
	return ret
}

// checkFragmentSpreadsExist is spec §4.3 check 13.
func checkFragmentSpreadsExist(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	index := ast.FragmentIndex(doc)
	var ret []*Error
	ast.Inspect(doc, func(node interface{}) bool {
		if spread, ok := node.(*ast.FragmentSpread); ok {
			if _, ok := index[spread.FragmentName.Name]; !ok {
				ret = append(ret, newError(spread.FragmentName, "undefined fragment: %s", spread.FragmentName.Name))
			}
		}
		return true
	})
	return ret
}

// checkFragmentCycles implements design note §9: follow spread edges out of every fragment
// definition and report a cycle before planning attempts to recursively expand one forever.
func checkFragmentCycles(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	frags := ast.FragmentIndex(doc)

	directDeps := map[string]map[string]bool{}
	for name, def := range frags {
		deps := map[string]bool{}
		ast.Inspect(def, func(node interface{}) bool {
			if spread, ok := node.(*ast.FragmentSpread); ok {
				deps[spread.FragmentName.Name] = true
			}
			return true
		})
		directDeps[name] = deps
	}

	var ret []*Error
	for name, def := range frags {
		toVisit := []string{name}
		encountered := map[string]bool{name: true}
		cycleFound := false
		for i := 0; i < len(toVisit) && !cycleFound; i++ {
			for dep := range directDeps[toVisit[i]] {
				if dep == name {
					cycleFound = true
					break
				}
				if !encountered[dep] {
					encountered[dep] = true
					toVisit = append(toVisit, dep)
				}
			}
		}
		if cycleFound {
			ret = append(ret, newError(def.Name, "fragment cycle detected: %s", name))
		}
	}
	return ret
}

// checkFragmentSpreadTypeRelevance is spec §4.3 check 14.
func checkFragmentSpreadTypeRelevance(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error {
	frags := ast.FragmentIndex(doc)
	var ret []*Error

	intersects := func(a, b map[string]*schema.ObjectType) bool {
		for k := range a {
			if _, ok := b[k]; ok {
				return true
			}
		}
		return false
	}

	// Every fragment spread lives directly inside some *ast.SelectionSet; typeInfo already
	// recorded that selection set's enclosing type during the initial walk, so pair each spread
	// with its containing selection set's possible types.
	for ss, enclosingType := range typeInfo.SelectionSetTypes {
		if enclosingType == nil {
			continue
		}
		enclosingPossible := schema.PossibleTypes(s, enclosingType)
		for _, sel := range ss.Selections {
			spread, ok := sel.(*ast.FragmentSpread)
			if !ok {
				continue
			}
			frag, ok := frags[spread.FragmentName.Name]
			if !ok {
				continue
			}
			fragType := s.NamedType(frag.TypeCondition.Name.Name)
			if fragType == nil || !schema.IsComposite(fragType) {
				continue
			}
			fragPossible := schema.PossibleTypes(s, fragType)
			if !intersects(fragPossible, enclosingPossible) {
				ret = append(ret, newError(spread.FragmentName, "fragment `%s` cannot be spread here: its type condition is never possible", spread.FragmentName.Name))
			}
		}
	}

	return ret
}
