package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/ts2luau/internal/ast"
	terrors "github.com/cwbudde/ts2luau/internal/errors"
)

// runtimeClassNames is the allow-list of bare identifiers that denote
// runtime classes and must be prefixed with the runtime namespace
// (spec §4.2).
var runtimeClassNames = map[string]bool{
	"Promise": true,
	"Symbol":  true,
}

// translateExpression dispatches on node kind to the matching
// specialized translator (spec §2).
func (t *Transpiler) translateExpression(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return t.translateIdentifier(n)
	case *ast.ThisExpression:
		return "self"
	case *ast.SuperExpression:
		t.fail(terrors.KindInternalUnreachable, n, "bare super is only valid in call/property-access position")
		return ""
	case *ast.NullLiteral:
		t.fail(terrors.KindNullLiteral, n, "null is not supported; use undefined (nil)")
		return ""
	case *ast.NumericLiteral:
		return t.translateNumericLiteral(n)
	case *ast.StringLiteral:
		return quoteLuauString(n.Value)
	case *ast.NoSubstitutionTemplateLiteral:
		return quoteLuauString(n.Value)
	case *ast.TemplateExpression:
		return t.translateTemplateExpression(n)
	case *ast.BooleanLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.ArrayLiteralExpression:
		return t.translateArrayLiteral(n)
	case *ast.ObjectLiteralExpression:
		return t.translateObjectLiteral(n)
	case *ast.BinaryExpression:
		return t.translateBinaryExpression(n, false)
	case *ast.PrefixUnaryExpression:
		return t.translatePrefixUnary(n)
	case *ast.PostfixUnaryExpression:
		return t.translatePostfixUnaryValue(n)
	case *ast.ConditionalExpression:
		return t.translateConditionalExpression(n)
	case *ast.CallExpression:
		return t.translateCallExpression(n)
	case *ast.NewExpression:
		return t.translateNewExpression(n)
	case *ast.PropertyAccessExpression:
		return t.translatePropertyAccess(n)
	case *ast.ElementAccessExpression:
		return t.translateElementAccess(n)
	case *ast.ParenthesizedExpression:
		return "(" + t.translateExpression(n.Expression) + ")"
	case *ast.AwaitExpression:
		return fmt.Sprintf("TS.await(%s)", t.translateExpression(n.Expression))
	case *ast.TypeOfExpression:
		return fmt.Sprintf("TS.typeof(%s)", t.translateExpression(n.Expression))
	case *ast.SpreadElement:
		return fmt.Sprintf("unpack(%s)", t.translateExpression(n.Expression))
	case *ast.AsExpression:
		return t.translateExpression(n.Expression)
	case *ast.NonNullExpression:
		return t.translateExpression(n.Expression)
	case *ast.FunctionDeclaration:
		return t.translateFunctionExpression(n)
	case *ast.ArrowFunction:
		return t.translateArrowFunction(n)
	case *ast.ClassDeclaration:
		return t.translateClassExpression(n)
	default:
		t.fail(terrors.KindInternalUnreachable, e, "unrecognized expression kind %T", e)
		return ""
	}
}

func (t *Transpiler) translateIdentifier(n *ast.Identifier) string {
	if n.Text == "undefined" {
		return "nil"
	}
	if runtimeClassNames[n.Text] {
		return "TS." + n.Text
	}
	if !t.isValidIdentifier(n.Text) || luauReservedWords[n.Text] {
		t.fail(terrors.KindReservedIdentifier, n, "identifier %q is reserved in the target language", n.Text)
	}
	return n.Text
}

// translateNumericLiteral preserves scientific notation verbatim;
// otherwise it emits the canonical decimal form of the parsed value
// (spec §4.2).
func (t *Transpiler) translateNumericLiteral(n *ast.NumericLiteral) string {
	lower := strings.ToLower(n.Text)
	if strings.ContainsAny(lower, "e") && !strings.HasPrefix(lower, "0x") {
		return n.Text
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// quoteLuauString rewrites a literal to double-quote-delimited form,
// escaping internal double quotes (spec §4.2).
func quoteLuauString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// translateTemplateExpression lowers a template literal to a
// concatenation of double-quoted fragments and tostring(expr) segments,
// eliding empty fragments (spec §4.2).
func (t *Transpiler) translateTemplateExpression(n *ast.TemplateExpression) string {
	var parts []string
	if n.Head != "" {
		parts = append(parts, quoteLuauString(n.Head))
	}
	for _, span := range n.Spans {
		parts = append(parts, fmt.Sprintf("tostring(%s)", t.translateExpression(span.Expression)))
		if span.Text != "" {
			parts = append(parts, quoteLuauString(span.Text))
		}
	}
	if len(parts) == 0 {
		return `""`
	}
	return strings.Join(parts, " .. ")
}

// translateArrayLiteral emits a flat brace-enclosed list, or, when any
// element is a spread, a runtime call concatenating interleaved inline
// groups and spread expressions (spec §4.2).
func (t *Transpiler) translateArrayLiteral(n *ast.ArrayLiteralExpression) string {
	hasSpread := false
	for _, el := range n.Elements {
		if _, ok := el.(*ast.SpreadElement); ok {
			hasSpread = true
			break
		}
	}

	if !hasSpread {
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = t.translateExpression(el)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}

	var groups []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, "{ "+strings.Join(current, ", ")+" }")
			current = nil
		}
	}
	for _, el := range n.Elements {
		if spread, ok := el.(*ast.SpreadElement); ok {
			flush()
			groups = append(groups, t.translateExpression(spread.Expression))
			continue
		}
		current = append(current, t.translateExpression(el))
	}
	flush()
	return fmt.Sprintf("TS.array_concat(%s)", strings.Join(groups, ", "))
}

// translateObjectLiteral emits bare-identifier keys where valid,
// indexed string/numeric keys otherwise, and routes spread properties
// through the runtime merge helper (spec §4.2).
func (t *Transpiler) translateObjectLiteral(n *ast.ObjectLiteralExpression) string {
	hasSpread := false
	for _, p := range n.Properties {
		if p.Spread != nil {
			hasSpread = true
			break
		}
	}

	if !hasSpread {
		parts := make([]string, 0, len(n.Properties))
		for _, p := range n.Properties {
			parts = append(parts, t.objectKey(p)+" = "+t.translateExpression(p.Value))
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	}

	var segments []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, "{ "+strings.Join(current, ", ")+" }")
			current = nil
		}
	}
	for _, p := range n.Properties {
		if p.Spread != nil {
			flush()
			segments = append(segments, t.translateExpression(p.Spread))
			continue
		}
		current = append(current, t.objectKey(p)+" = "+t.translateExpression(p.Value))
	}
	flush()

	if len(segments) > 0 {
		if !strings.HasPrefix(segments[0], "{") {
			segments = append([]string{"{}"}, segments...)
		}
	}
	return fmt.Sprintf("TS.Object_assign(%s)", strings.Join(segments, ", "))
}

func (t *Transpiler) objectKey(p ast.PropertyAssignment) string {
	if p.ComputedName {
		return "[" + t.translateExpression(p.Key) + "]"
	}
	switch k := p.Key.(type) {
	case *ast.Identifier:
		return k.Text
	case *ast.StringLiteral:
		if t.isValidIdentifier(k.Value) {
			return k.Value
		}
		return "[" + quoteLuauString(k.Value) + "]"
	case *ast.NumericLiteral:
		return "[" + t.translateNumericLiteral(k) + "]"
	default:
		return "[" + t.translateExpression(p.Key) + "]"
	}
}
