package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgqlx/relgraph/internal/testschema"
	"github.com/relgqlx/relgraph/parser"
	"github.com/relgqlx/relgraph/validator"
)

func parseAndValidate(t *testing.T, query string) []*validator.Error {
	t.Helper()
	s, _ := testschema.New()
	doc, perrs := parser.ParseDocument([]byte(query), false)
	require.Empty(t, perrs)
	return validator.Validate(doc, s)
}

func TestValidate_ValidQueryHasNoErrors(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1) { id name posts { id title } } }`)
	assert.Empty(t, errs)
}

func TestValidate_UnknownFieldIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1) { nope } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_UnknownArgumentIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author(nope: 1) { id } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_MissingRequiredArgumentIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author { id } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_DuplicateArgumentNameIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1, id: 2) { id } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_UnknownDirectiveIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1) { id @bogus } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_DuplicateDirectiveIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1) { id @skip(if: true) @skip(if: false) } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_DuplicateOperationNameIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `
		query A { author(id: 1) { id } }
		query A { author(id: 2) { id } }
	`)
	require.NotEmpty(t, errs)
}

func TestValidate_MultipleAnonymousOperationsIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `
		{ author(id: 1) { id } }
		{ author(id: 2) { id } }
	`)
	require.NotEmpty(t, errs)
}

func TestValidate_UndefinedFragmentSpreadIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1) { ...missing } }`)
	require.NotEmpty(t, errs)
}

func TestValidate_UnusedFragmentIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `
		{ author(id: 1) { id } }
		fragment f on Author { name }
	`)
	require.NotEmpty(t, errs)
}

func TestValidate_DuplicateFragmentNameIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `
		{ author(id: 1) { ...f } }
		fragment f on Author { id }
		fragment f on Author { name }
	`)
	require.NotEmpty(t, errs)
}

func TestValidate_FragmentCycleIsRejected(t *testing.T) {
	errs := parseAndValidate(t, `
		{ author(id: 1) { ...a } }
		fragment a on Author { ...b }
		fragment b on Author { ...a }
	`)
	require.NotEmpty(t, errs)
}

func TestValidate_ValidFragmentSpreadIsAccepted(t *testing.T) {
	errs := parseAndValidate(t, `
		{ author(id: 1) { ...f } }
		fragment f on Author { id name }
	`)
	assert.Empty(t, errs)
}

func TestValidate_TypenameIsAlwaysSelectable(t *testing.T) {
	errs := parseAndValidate(t, `{ author(id: 1) { __typename id } }`)
	assert.Empty(t, errs)
}

func TestValidate_IdempotentOnIdenticalDocuments(t *testing.T) {
	s, _ := testschema.New()
	doc, _ := parser.ParseDocument([]byte(`{ author(id: 1) { id name } }`), false)
	first := validator.Validate(doc, s)
	second := validator.Validate(doc, s)
	assert.Equal(t, first, second)
}
