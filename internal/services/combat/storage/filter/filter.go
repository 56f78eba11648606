// Package filter parses AIP-160 journal filters into SQL conditions and
// in-memory predicates.
package filter

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Row is the filterable view of one journal entry.
type Row struct {
	Kind   string
	Status string
	Seq    uint64
}

// SQLCondition represents a SQL WHERE clause fragment with parameters.
type SQLCondition struct {
	Clause string
	Params []any
}

// Filter is a parsed journal filter. The zero value matches everything.
type Filter struct {
	root *expr.Expr
}

// fieldMapping maps filter identifiers to journal columns.
var fieldMapping = map[string]string{
	"kind":   "kind",
	"status": "status",
	"seq":    "seq",
}

// JournalDeclarations returns the identifiers a journal filter may use.
func JournalDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("kind", filtering.TypeString),
		filtering.DeclareIdent("status", filtering.TypeString),
		filtering.DeclareIdent("seq", filtering.TypeInt),
	)
}

// Parse parses an AIP-160 expression such as `kind = "strike" AND seq > 3`.
// An empty expression yields the match-all filter.
func Parse(filterStr string) (Filter, error) {
	if strings.TrimSpace(filterStr) == "" {
		return Filter{}, nil
	}
	decls, err := JournalDeclarations()
	if err != nil {
		return Filter{}, fmt.Errorf("create declarations: %w", err)
	}
	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return Filter{}, fmt.Errorf("parse filter: %w", err)
	}
	f := Filter{root: parsed.CheckedExpr.GetExpr()}
	// Reject expressions the translators cannot handle up front.
	if _, err := f.SQL(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.root == nil
}

// SQL translates the filter into a WHERE fragment. The zero filter yields an
// empty clause.
func (f Filter) SQL() (SQLCondition, error) {
	if f.root == nil {
		return SQLCondition{}, nil
	}
	return translateExpr(f.root)
}

// Match evaluates the filter against row.
func (f Filter) Match(row Row) bool {
	if f.root == nil {
		return true
	}
	ok, err := evalExpr(f.root, row)
	return err == nil && ok
}

func translateExpr(e *expr.Expr) (SQLCondition, error) {
	call := e.GetCallExpr()
	if call == nil {
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	switch call.GetFunction() {
	case filtering.FunctionAnd, filtering.FunctionFuzzyAnd, filtering.FunctionOr:
		if len(call.GetArgs()) != 2 {
			return SQLCondition{}, fmt.Errorf("%s requires 2 arguments", call.GetFunction())
		}
		left, err := translateExpr(call.GetArgs()[0])
		if err != nil {
			return SQLCondition{}, err
		}
		right, err := translateExpr(call.GetArgs()[1])
		if err != nil {
			return SQLCondition{}, err
		}
		joiner := "AND"
		if call.GetFunction() == filtering.FunctionOr {
			joiner = "OR"
		}
		return SQLCondition{
			Clause: fmt.Sprintf("(%s %s %s)", left.Clause, joiner, right.Clause),
			Params: append(left.Params, right.Params...),
		}, nil
	case filtering.FunctionNot:
		if len(call.GetArgs()) != 1 {
			return SQLCondition{}, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := translateExpr(call.GetArgs()[0])
		if err != nil {
			return SQLCondition{}, err
		}
		return SQLCondition{Clause: "(NOT " + inner.Clause + ")", Params: inner.Params}, nil
	}

	op, ok := sqlOperator(call.GetFunction())
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.GetFunction())
	}
	column, value, err := comparison(call)
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func sqlOperator(function string) (string, bool) {
	switch function {
	case filtering.FunctionEquals:
		return "=", true
	case filtering.FunctionNotEquals:
		return "!=", true
	case filtering.FunctionLessThan:
		return "<", true
	case filtering.FunctionLessEquals:
		return "<=", true
	case filtering.FunctionGreaterThan:
		return ">", true
	case filtering.FunctionGreaterEquals:
		return ">=", true
	default:
		return "", false
	}
}

// comparison extracts the column and constant of a field-to-value call.
func comparison(call *expr.Expr_Call) (string, any, error) {
	if len(call.GetArgs()) != 2 {
		return "", nil, fmt.Errorf("comparison requires 2 arguments")
	}
	ident := call.GetArgs()[0].GetIdentExpr()
	if ident == nil {
		return "", nil, fmt.Errorf("expected identifier, got %T", call.GetArgs()[0].GetExprKind())
	}
	column, ok := fieldMapping[ident.GetName()]
	if !ok {
		return "", nil, fmt.Errorf("unknown field: %s", ident.GetName())
	}
	constant := call.GetArgs()[1].GetConstExpr()
	if constant == nil {
		return "", nil, fmt.Errorf("expected constant, got %T", call.GetArgs()[1].GetExprKind())
	}
	switch kind := constant.GetConstantKind().(type) {
	case *expr.Constant_StringValue:
		return column, kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return column, kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return column, int64(kind.Uint64Value), nil
	default:
		return "", nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

func evalExpr(e *expr.Expr, row Row) (bool, error) {
	call := e.GetCallExpr()
	if call == nil {
		return false, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	switch call.GetFunction() {
	case filtering.FunctionAnd, filtering.FunctionFuzzyAnd:
		left, err := evalExpr(call.GetArgs()[0], row)
		if err != nil || !left {
			return false, err
		}
		return evalExpr(call.GetArgs()[1], row)
	case filtering.FunctionOr:
		left, err := evalExpr(call.GetArgs()[0], row)
		if err != nil || left {
			return left, err
		}
		return evalExpr(call.GetArgs()[1], row)
	case filtering.FunctionNot:
		inner, err := evalExpr(call.GetArgs()[0], row)
		return !inner, err
	}

	column, value, err := comparison(call)
	if err != nil {
		return false, err
	}
	var cmp int
	switch column {
	case "seq":
		want, ok := value.(int64)
		if !ok {
			return false, fmt.Errorf("seq compares against integers")
		}
		cmp = compareInt(int64(row.Seq), want)
	default:
		want, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("%s compares against strings", column)
		}
		got := row.Kind
		if column == "status" {
			got = row.Status
		}
		cmp = strings.Compare(got, want)
	}
	switch call.GetFunction() {
	case filtering.FunctionEquals:
		return cmp == 0, nil
	case filtering.FunctionNotEquals:
		return cmp != 0, nil
	case filtering.FunctionLessThan:
		return cmp < 0, nil
	case filtering.FunctionLessEquals:
		return cmp <= 0, nil
	case filtering.FunctionGreaterThan:
		return cmp > 0, nil
	case filtering.FunctionGreaterEquals:
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("unsupported function: %s", call.GetFunction())
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
