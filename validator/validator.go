package validator

import (
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/schema"
)

type checkFunc func(doc *ast.Document, s *schema.Schema, typeInfo *TypeInfo) []*Error

// Validate runs the ordered checks from spec §4.3, stopping at the first one that reports any
// error. A nil return means doc is valid against s.
func Validate(doc *ast.Document, s *schema.Schema) []*Error {
	typeInfo := buildTypeInfo(doc, s)

	checks := []checkFunc{
		checkOperationNameUniqueness,
		checkLoneAnonymousOperation,
		checkTypeReferencesExist,
		checkSelectionFieldsExist,
		checkDirectivesExist,
		checkDirectivePlacement,
		checkDirectiveUniqueness,
		checkArgumentNameDuplication,
		checkArgumentNamesExist,
		checkRequiredArguments,
		checkFragmentNameUniqueness,
		checkUnusedFragments,
		checkFragmentSpreadsExist,
		checkFragmentCycles,
		checkFragmentSpreadTypeRelevance,
	}

	for _, check := range checks {
		if errs := check(doc, s, typeInfo); len(errs) > 0 {
			return errs
		}
	}
	return nil
}
