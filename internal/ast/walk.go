package ast

// Walk visits n and its children in pre-order. The visit callback
// returns false to skip a node's children. Kinds are not visited; they
// are cache-shared and carry no spans.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}

	switch n := n.(type) {
	case *TypeHole, *TypeBuiltin, *TypeOpaque, *TypeIdent, *TypeGeneric,
		*TypeProjection, *TypeEmptyRow:

	case *TypeApp:
		Walk(n.Head, visit)
		for _, a := range n.Args {
			Walk(a, visit)
		}
	case *TypeFunction:
		Walk(n.From, visit)
		Walk(n.To, visit)
	case *TypeForall:
		for _, p := range n.Params {
			Walk(p, visit)
		}
		Walk(n.Body, visit)
	case *TypeRecord:
		Walk(n.Row, visit)
	case *TypeVariant:
		Walk(n.Row, visit)
	case *TypeEffect:
		Walk(n.Row, visit)
	case *TypeExtendRow:
		for _, f := range n.Types {
			for _, p := range f.Params {
				Walk(p, visit)
			}
			Walk(f.Typ, visit)
		}
		for _, f := range n.Fields {
			Walk(f.Typ, visit)
		}
		Walk(n.Rest, visit)

	case *PatternIdent, *PatternError:

	case *PatternConstructor:
		for _, a := range n.Args {
			Walk(a, visit)
		}
	case *PatternLiteral:
		Walk(n.Lit, visit)
	case *PatternAs:
		Walk(n.Pat, visit)
	case *PatternTuple:
		for _, e := range n.Elems {
			Walk(e, visit)
		}
	case *PatternRecord:
		for _, f := range n.Values {
			if f.Pat != nil {
				Walk(f.Pat, visit)
			}
		}

	case *ExprIdent:

	case *ExprError:
		if n.Payload != nil {
			Walk(n.Payload, visit)
		}
	case *ExprLiteral:
		Walk(n.Lit, visit)
	case *ExprProjection:
		Walk(n.Expr, visit)
	case *ExprTuple:
		for _, e := range n.Elems {
			Walk(e, visit)
		}
	case *ExprArray:
		for _, e := range n.Elems {
			Walk(e, visit)
		}
	case *ExprRecord:
		for _, f := range n.Types {
			if f.Typ != nil {
				Walk(f.Typ, visit)
			}
		}
		for _, f := range n.Values {
			if f.Value != nil {
				Walk(f.Value, visit)
			}
		}
		if n.Base != nil {
			Walk(n.Base, visit)
		}
	case *ExprApp:
		Walk(n.Func, visit)
		for _, a := range n.ImplicitArgs {
			Walk(a, visit)
		}
		for _, a := range n.Args {
			Walk(a, visit)
		}
	case *ExprInfix:
		Walk(n.Lhs, visit)
		for _, a := range n.ImplicitArgs {
			Walk(a, visit)
		}
		Walk(n.Rhs, visit)
	case *ExprLambda:
		Walk(n.Body, visit)
	case *ExprIfElse:
		Walk(n.Cond, visit)
		Walk(n.Then, visit)
		Walk(n.Else, visit)
	case *ExprMatch:
		Walk(n.Scrutinee, visit)
		for _, alt := range n.Alts {
			Walk(alt.Pattern, visit)
			Walk(alt.Expr, visit)
		}
	case *ExprLet:
		for i := range n.Bindings {
			Walk(&n.Bindings[i], visit)
		}
		Walk(n.Body, visit)
	case *ExprTypeBindings:
		for i := range n.Bindings {
			Walk(&n.Bindings[i], visit)
		}
		Walk(n.Body, visit)
	case *ExprDo:
		if n.Id != nil {
			Walk(n.Id, visit)
		}
		Walk(n.Bound, visit)
		Walk(n.Body, visit)
	case *ExprBlock:
		for _, e := range n.Exprs {
			Walk(e, visit)
		}

	case *ValueBinding:
		Walk(n.Name, visit)
		if n.Typ != nil {
			Walk(n.Typ, visit)
		}
		Walk(n.Expr, visit)
	case *TypeBinding:
		for _, p := range n.Params {
			Walk(p, visit)
		}
		Walk(n.Alias.Typ, visit)

	case *LitInt, *LitByte, *LitFloat, *LitString, *LitChar:
	}
}
