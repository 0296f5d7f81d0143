// Package relgraph is the root entry point of the engine: Execute wires the lexer, parser,
// validator, document cache, planner, executor, and response assembler together into the single
// `request(document_text, database) -> Response` operation spec §6 names.
package relgraph

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/relgqlx/relgraph/assembler"
	"github.com/relgqlx/relgraph/ast"
	"github.com/relgqlx/relgraph/dbiface"
	"github.com/relgqlx/relgraph/executor"
	"github.com/relgqlx/relgraph/parser"
	"github.com/relgqlx/relgraph/planner"
	"github.com/relgqlx/relgraph/querycache"
	"github.com/relgqlx/relgraph/responsevalue"
	"github.com/relgqlx/relgraph/schema"
	"github.com/relgqlx/relgraph/token"
	"github.com/relgqlx/relgraph/validator"
)

// Log is the package-wide logger, matching the teacher's package-level logrus.Logger idiom
// (examples/chat). Callers may point it at their own output/level with logrus.SetOutput etc., or
// replace it outright.
var Log = logrus.StandardLogger()

// Request is spec §3's "Request": either raw query text or an already-parsed, already-validated
// Document (the teacher's Request.Document escape hatch, letting a cache-aware caller skip
// lex/parse/validate entirely).
type Request struct {
	Schema   *schema.Schema
	Database dbiface.Database
	Cache    *querycache.Cache // nil disables the document cache

	Query    string
	Document *ast.Document // set instead of Query to bypass lex/parse/validate/cache
}

// Location is a one-based source position (spec §6).
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// ResponseError is one entry of Response.Errors (spec §6).
type ResponseError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

// Response is `{ data?, errors? }` (spec §6): data is omitted when no data was produced (parse or
// validation failure), errors is omitted when empty.
type Response struct {
	Data   responsevalue.Value `json:"data,omitempty"`
	Errors []ResponseError     `json:"errors,omitempty"`
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON serializes r via jsoniter (SPEC_FULL.md's one real JSON boundary), respecting
// responsevalue's custom per-node MarshalJSON implementations for field-order-preserving objects.
func (r *Response) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(struct {
		Data   responsevalue.Value `json:"data,omitempty"`
		Errors []ResponseError     `json:"errors,omitempty"`
	}{r.Data, r.Errors})
}

func errorResponse(errs ...ResponseError) *Response {
	return &Response{Errors: errs}
}

func locationsOf(positions []token.Position) []Location {
	var out []Location
	for _, p := range positions {
		if !p.IsValid() {
			continue
		}
		out = append(out, Location{Line: p.Line, Column: p.Column})
	}
	return out
}

// Execute runs req to completion: lex/parse/validate (or a cache hit), plan, execute against
// req.Database, and assemble a Response. It never panics on a malformed request — parse and
// validation failures are reported as Response.Errors with Data omitted, per spec §6/§7.
func Execute(ctx context.Context, req *Request) *Response {
	doc, errs := documentFor(req)
	if len(errs) > 0 {
		return errorResponse(errs...)
	}

	ops := ast.Operations(doc)
	if len(ops) == 0 {
		return errorResponse(ResponseError{Message: "document has no operations to execute"})
	}
	if len(ops) > 1 {
		return errorResponse(ResponseError{Message: "document has multiple operations; selecting one to execute is not supported"})
	}
	op := ops[0]
	if op.OperationType != nil && op.OperationType.Value != "query" {
		return errorResponse(ResponseError{
			Message:   "only query operations are executed",
			Locations: locationsOf([]token.Position{op.Position()}),
		})
	}

	plans, err := planner.Plan(doc, op, req.Schema)
	if err != nil {
		return errorResponse(ResponseError{Message: err.Error()})
	}
	rootName := req.Schema.QueryType().Name

	Log.WithFields(logrus.Fields{"fields": len(plans[rootName])}).Debug("executing plan")

	var events []executor.Event
	if req.Database.IsSync() {
		events, err = executor.ExecuteSync(ctx, req.Database, req.Schema, rootName, plans[rootName])
	} else {
		events, err = executor.Execute(ctx, req.Database, req.Schema, rootName, plans[rootName])
	}
	if err != nil {
		rtErr := errors.Wrap(err, "runtime error")
		Log.WithError(rtErr).Warn("database fetch failed")
		return errorResponse(ResponseError{Message: rtErr.Error()})
	}

	return &Response{Data: assembler.Assemble(events)}
}

// documentFor resolves req to a validated Document, consulting the cache when req.Query is used.
// On parse/validation failure it re-parses with position tracking enabled (spec §7's "re-parse
// with position tracking enabled so error locations can be reported") — the happy path never pays
// for positions at all.
func documentFor(req *Request) (*ast.Document, []ResponseError) {
	if req.Document != nil {
		return req.Document, nil
	}

	query := []byte(req.Query)
	var hash uint64
	if req.Cache != nil {
		hash = querycache.Hash(query)
		if doc, ok := req.Cache.Get(hash); ok {
			return doc, nil
		}
	}

	doc, perrs := parser.ParseDocument(query, false)
	if len(perrs) == 0 {
		if verrs := validator.Validate(doc, req.Schema); len(verrs) == 0 {
			if req.Cache != nil {
				req.Cache.Put(hash, doc)
				Log.WithField("cache_size", req.Cache.Len()).Debug("inserted validated document into cache")
			}
			return doc, nil
		}
	}

	// Something failed; re-parse with positions so the error(s) carry source locations.
	doc, perrs = parser.ParseDocument(query, true)
	if len(perrs) > 0 {
		out := make([]ResponseError, len(perrs))
		for i, e := range perrs {
			out[i] = ResponseError{Message: e.Error(), Locations: locationsOf([]token.Position{e.Location})}
		}
		return nil, out
	}
	verrs := validator.Validate(doc, req.Schema)
	out := make([]ResponseError, len(verrs))
	for i, e := range verrs {
		out[i] = ResponseError{Message: e.Error(), Locations: locationsOf(e.Locations)}
	}
	return nil, out
}
