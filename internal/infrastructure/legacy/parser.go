// Package legacy interpreta el módulo TypeScript con los arreglos literales de productos y
// categorías que precedió al Catalog Store en archivos.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/jhoicas/printshop-catalog/internal/domain"
)

// Nombres de las declaraciones que contienen los datos.
const (
	ProductsDecl   = "products"
	CategoriesDecl = "categories"
)

// ErrMarkerNotFound falta la declaración de products o categories en el módulo.
var ErrMarkerNotFound = fmt.Errorf("declaración del módulo legado: %w", domain.ErrNotFound)

// ParseError error de sintaxis o de literal no soportado, con posición 1-based.
type ParseError struct {
	Decl   string
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: línea %d, columna %d: %s", e.Decl, e.Line, e.Column, e.Msg)
}

// Module datos extraídos: cada elemento es el valor plano del literal
// (map[string]any, []any, string, json.Number, bool o nil).
type Module struct {
	Products   []any
	Categories []any
}

// Parse analiza src con la gramática TypeScript y evalúa los arreglos literales de las
// declaraciones products y categories. No ejecuta código: solo acepta literales.
func Parse(ctx context.Context, src []byte) (*Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsear módulo: %w", err)
	}
	defer tree.Close()

	decls := topLevelDeclarators(tree.RootNode(), src)

	mod := &Module{}
	for _, target := range []struct {
		name string
		out  *[]any
	}{
		{ProductsDecl, &mod.Products},
		{CategoriesDecl, &mod.Categories},
	} {
		node, ok := decls[target.name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMarkerNotFound, target.name)
		}
		ev := evaluator{src: src, decl: target.name}
		v, err := ev.eval(node)
		if err != nil {
			return nil, err
		}
		if node.HasError() {
			return nil, ev.errorAt(node, "sintaxis inválida en el literal")
		}
		arr, ok := v.([]any)
		if !ok {
			return nil, ev.errorAt(node, "se esperaba un arreglo literal")
		}
		*target.out = arr
	}
	return mod, nil
}

// topLevelDeclarators indexa por nombre el valor de cada `const|let|var x = ...` de primer
// nivel, exportado o no. Gana la primera declaración de cada nombre.
func topLevelDeclarators(root *sitter.Node, src []byte) map[string]*sitter.Node {
	out := make(map[string]*sitter.Node)
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() == "export_statement" {
			stmt = stmt.ChildByFieldName("declaration")
			if stmt == nil {
				continue
			}
		}
		if stmt.Type() != "lexical_declaration" && stmt.Type() != "variable_declaration" {
			continue
		}
		for j := 0; j < int(stmt.NamedChildCount()); j++ {
			d := stmt.NamedChild(j)
			if d.Type() != "variable_declarator" {
				continue
			}
			name := d.ChildByFieldName("name")
			value := d.ChildByFieldName("value")
			if name == nil || value == nil {
				continue
			}
			key := name.Content(src)
			if _, seen := out[key]; !seen {
				out[key] = value
			}
		}
	}
	return out
}

type evaluator struct {
	src  []byte
	decl string
}

func (e evaluator) errorAt(n *sitter.Node, format string, args ...any) error {
	p := n.StartPoint()
	return &ParseError{Decl: e.decl, Line: int(p.Row) + 1, Column: int(p.Column) + 1, Msg: fmt.Sprintf(format, args...)}
}

func (e evaluator) eval(n *sitter.Node) (any, error) {
	if n.IsMissing() {
		return nil, e.errorAt(n, "falta %q", n.Type())
	}
	switch n.Type() {
	case "ERROR":
		return nil, e.errorAt(n, "sintaxis inválida cerca de %q", abbreviate(n.Content(e.src)))
	case "array":
		return e.evalArray(n)
	case "object":
		return e.evalObject(n)
	case "string":
		return e.evalString(n)
	case "template_string":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if n.NamedChild(i).Type() == "template_substitution" {
				return nil, e.errorAt(n, "template string con sustituciones no soportado")
			}
		}
		return e.evalString(n)
	case "number":
		return e.evalNumber(n, n.Content(e.src))
	case "unary_expression":
		return e.evalUnary(n)
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null", "undefined":
		return nil, nil
	case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
		if n.NamedChildCount() == 0 {
			return nil, e.errorAt(n, "expresión vacía")
		}
		return e.eval(n.NamedChild(0))
	default:
		return nil, e.errorAt(n, "expresión no soportada (%s): %q", n.Type(), abbreviate(n.Content(e.src)))
	}
}

func (e evaluator) evalArray(n *sitter.Node) (any, error) {
	out := make([]any, 0, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		v, err := e.eval(child)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (e evaluator) evalObject(n *sitter.Node) (any, error) {
	out := make(map[string]any, n.NamedChildCount())
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "comment":
			continue
		case "pair":
		case "ERROR":
			return nil, e.errorAt(child, "sintaxis inválida cerca de %q", abbreviate(child.Content(e.src)))
		default:
			return nil, e.errorAt(child, "propiedad no soportada (%s)", child.Type())
		}
		keyNode := child.ChildByFieldName("key")
		valueNode := child.ChildByFieldName("value")
		if keyNode == nil || valueNode == nil {
			return nil, e.errorAt(child, "propiedad incompleta")
		}
		key, err := e.evalKey(keyNode)
		if err != nil {
			return nil, err
		}
		v, err := e.eval(valueNode)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func (e evaluator) evalKey(n *sitter.Node) (string, error) {
	switch n.Type() {
	case "property_identifier":
		return n.Content(e.src), nil
	case "string":
		v, err := e.evalString(n)
		if err != nil {
			return "", err
		}
		return v.(string), nil
	case "number":
		v, err := e.evalNumber(n, n.Content(e.src))
		if err != nil {
			return "", err
		}
		return v.(json.Number).String(), nil
	default:
		return "", e.errorAt(n, "clave no soportada (%s)", n.Type())
	}
}

// evalString quita los delimitadores (', " o `) e interpreta los escapes.
func (e evaluator) evalString(n *sitter.Node) (any, error) {
	raw := n.Content(e.src)
	if len(raw) < 2 {
		return nil, e.errorAt(n, "string incompleto")
	}
	s, err := unescape(raw[1 : len(raw)-1])
	if err != nil {
		return nil, e.errorAt(n, "%v", err)
	}
	return s, nil
}

func (e evaluator) evalNumber(n *sitter.Node, text string) (any, error) {
	num, err := parseNumber(text)
	if err != nil {
		return nil, e.errorAt(n, "%v", err)
	}
	return num, nil
}

func (e evaluator) evalUnary(n *sitter.Node) (any, error) {
	op := n.ChildByFieldName("operator")
	arg := n.ChildByFieldName("argument")
	if op == nil || arg == nil || arg.Type() != "number" {
		return nil, e.errorAt(n, "expresión unaria no soportada: %q", abbreviate(n.Content(e.src)))
	}
	switch op.Content(e.src) {
	case "-":
		return e.evalNumber(n, "-"+arg.Content(e.src))
	case "+":
		return e.evalNumber(n, arg.Content(e.src))
	default:
		return nil, e.errorAt(n, "operador %q no soportado", op.Content(e.src))
	}
}

// parseNumber normaliza un literal numérico JS a json.Number.
func parseNumber(text string) (json.Number, error) {
	s := strings.ReplaceAll(text, "_", "")
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	lower := strings.ToLower(body)
	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		n, err := strconv.ParseInt(body, 0, 64)
		if err != nil {
			return "", fmt.Errorf("número inválido %q", text)
		}
		if neg {
			n = -n
		}
		return json.Number(strconv.FormatInt(n, 10)), nil
	}
	if strings.HasSuffix(lower, "n") {
		return "", fmt.Errorf("BigInt no soportado: %q", text)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("número inválido %q", text)
	}
	if !strings.ContainsAny(lower, ".e") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return json.Number(strconv.FormatInt(n, 10)), nil
		}
	}
	return json.Number(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func abbreviate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}
