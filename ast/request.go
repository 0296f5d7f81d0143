package ast

// FragmentIndex maps fragment name to its definition, the "fragment-name index" spec §3's
// Request carries alongside the ordered definition list.
func FragmentIndex(doc *Document) map[string]*FragmentDefinition {
	index := map[string]*FragmentDefinition{}
	for _, d := range doc.Definitions {
		if f, ok := d.(*FragmentDefinition); ok {
			if _, exists := index[f.Name.Name]; !exists {
				index[f.Name.Name] = f
			}
		}
	}
	return index
}

// Operations returns every OperationDefinition in doc, in document order.
func Operations(doc *Document) []*OperationDefinition {
	var ops []*OperationDefinition
	for _, d := range doc.Definitions {
		if op, ok := d.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns every FragmentDefinition in doc, in document order.
func Fragments(doc *Document) []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, d := range doc.Definitions {
		if f, ok := d.(*FragmentDefinition); ok {
			frags = append(frags, f)
		}
	}
	return frags
}
