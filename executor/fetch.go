package executor

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/depvalue"
	"github.com/relgqlx/relgraph/schema"
)

// columnGetGroup coalesces every ColumnGet dependency across the wave that shares a (table,
// idColumn, id): spec §4.5's fetch coalescing, "combining instructions that share table, id
// column, and id into one multi-column fetch".
type columnGetGroup struct {
	table, idColumn string
	id              depvalue.Id
	columns         map[string]depvalue.Type
	result          map[string]depvalue.Value
	err             error
}

// columnGetListGroup coalesces every ColumnGetList dependency sharing a (table, where signature)
// into one multi-column fetch when more than one column is requested; a lone request skips the
// transpose step and calls GetColumnList directly.
type columnGetListGroup struct {
	table   string
	wheres  []dbiface.Where
	columns []string // column -> element DependencyType recorded in elemTypes
	elemTypes map[string]depvalue.Type
	rows    []map[string]depvalue.Value
	single  []depvalue.Value // populated instead of rows when len(columns) == 1
	err     error
}

// runWave issues every fetch the wave's jobs are waiting on, concurrently, then applies every
// job's continuation sequentially in job order (so event ordering never depends on fetch
// completion order, per spec §8 "response field ordering is governed by plan order").
func (r *run) runWave(wave []*job) ([]*job, error) {
	columnGetGroups := map[string]*columnGetGroup{}
	columnGetListGroups := map[string]*columnGetListGroup{}

	for _, j := range wave {
		for _, dep := range j.pending {
			switch src := dep.Source.(type) {
			case schema.ColumnGet:
				key := src.Table + "\x00" + src.IdColumn + "\x00" + externalID(j.external).String()
				g := columnGetGroups[key]
				if g == nil {
					g = &columnGetGroup{table: src.Table, idColumn: src.IdColumn, id: externalID(j.external), columns: map[string]depvalue.Type{}}
					columnGetGroups[key] = g
				}
				g.columns[src.Column] = dep.Type
			case schema.ColumnGetList:
				wheres := wheresFor(src.Wheres, j.external)
				key := src.Table + "\x00" + whereSignature(wheres)
				g := columnGetListGroups[key]
				if g == nil {
					g = &columnGetListGroup{table: src.Table, wheres: wheres, elemTypes: map[string]depvalue.Type{}}
					columnGetListGroups[key] = g
				}
				g.columns = appendUnique(g.columns, src.Column)
				g.elemTypes[src.Column] = elementType(dep.Type)
			default:
				panic(fmt.Sprintf("executor: pending dependency has unresolvable source %T", dep.Source))
			}
		}
	}

	var wg sync.WaitGroup
	for _, g := range columnGetGroups {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			specs := make([]dbiface.ColumnSpec, 0, len(g.columns))
			for c, t := range g.columns {
				specs = append(specs, dbiface.ColumnSpec{Column: c, Type: t})
			}
			g.result, g.err = r.db.GetColumns(r.ctx, g.table, specs, g.id, g.idColumn)
		}()
	}
	for _, g := range columnGetListGroups {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			if len(g.columns) == 1 {
				col := g.columns[0]
				g.single, g.err = r.db.GetColumnList(r.ctx, g.table, col, g.elemTypes[col], g.wheres)
				return
			}
			specs := make([]dbiface.ColumnSpec, 0, len(g.columns))
			for _, c := range g.columns {
				specs = append(specs, dbiface.ColumnSpec{Column: c, Type: g.elemTypes[c]})
			}
			g.rows, g.err = r.db.GetColumnsList(r.ctx, g.table, specs, g.wheres)
		}()
	}
	wg.Wait()

	for _, g := range columnGetGroups {
		if g.err != nil {
			return nil, fmt.Errorf("executor: fetching columns from %q: %w", g.table, g.err)
		}
	}
	for _, g := range columnGetListGroups {
		if g.err != nil {
			return nil, fmt.Errorf("executor: fetching column list from %q: %w", g.table, g.err)
		}
	}

	var next []*job
	for _, j := range wave {
		for _, dep := range j.pending {
			switch src := dep.Source.(type) {
			case schema.ColumnGet:
				key := src.Table + "\x00" + src.IdColumn + "\x00" + externalID(j.external).String()
				j.internal.Set(dep.Name, columnGetGroups[key].result[src.Column])
			case schema.ColumnGetList:
				wheres := wheresFor(src.Wheres, j.external)
				key := src.Table + "\x00" + whereSignature(wheres)
				g := columnGetListGroups[key]
				j.internal.Set(dep.Name, listValueFor(g, src.Column, dep.Type))
			}
		}
		next = append(next, r.applyField(j.attach, j.plan, j.concreteType, j.external, j.internal)...)
	}
	return next, nil
}

func listValueFor(g *columnGetListGroup, column string, t depvalue.Type) depvalue.Value {
	if len(g.columns) == 1 {
		return listFromElements(g.single, t)
	}
	elems := make([]depvalue.Value, len(g.rows))
	for i, row := range g.rows {
		elems[i] = row[column]
	}
	return listFromElements(elems, t)
}

func listFromElements(elems []depvalue.Value, t depvalue.Type) depvalue.Value {
	switch t {
	case depvalue.ListOfIds:
		ids := make([]depvalue.Id, len(elems))
		for i, e := range elems {
			ids[i] = e.(depvalue.IdValue).Value
		}
		return depvalue.NewIdsList(ids)
	case depvalue.ListOfStrings:
		ss := make([]string, len(elems))
		for i, e := range elems {
			ss[i] = e.(depvalue.StringValue).Value
		}
		return depvalue.NewStringsList(ss)
	default:
		panic(fmt.Sprintf("executor: ColumnGetList dependency declared non-list type %s", t))
	}
}

func elementType(listType depvalue.Type) depvalue.Type {
	switch listType {
	case depvalue.ListOfIds:
		return depvalue.Id
	case depvalue.ListOfStrings:
		return depvalue.String
	default:
		panic(fmt.Sprintf("executor: %s is not a list DependencyType", listType))
	}
}

func wheresFor(wheres []schema.Where, external *depvalue.Context) []dbiface.Where {
	out := make([]dbiface.Where, len(wheres))
	for i, w := range wheres {
		out[i] = dbiface.Where{Column: w.Column, Value: depvalue.IdValue{Value: externalID(external)}}
	}
	return out
}

func whereSignature(wheres []dbiface.Where) string {
	parts := make([]string, len(wheres))
	for i, w := range wheres {
		parts[i] = w.Column + "=" + fmt.Sprint(w.Value)
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x00")
}

func appendUnique(ss []string, s string) []string {
	for _, existing := range ss {
		if existing == s {
			return ss
		}
	}
	return append(ss, s)
}
