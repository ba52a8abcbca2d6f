package eslint

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	printWidth  = 80
	indentWidth = 2 // columns a tab counts for
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Print renders m as formatted JavaScript. Output is a pure function of m.
//
// Layout follows the default JS formatter style: tab indentation, double
// quotes, semicolons, and groups kept on one line when they fit in 80 columns
// (otherwise one member per line with trailing commas).
func Print(m *Module) []byte {
	var b strings.Builder

	for _, imp := range m.Imports {
		b.WriteString(printImport(imp))
		b.WriteByte('\n')
	}

	if m.Default != nil {
		if len(m.Imports) > 0 {
			b.WriteByte('\n')
		}
		const prefix = "export default "
		b.WriteString(prefix)
		b.WriteString(render(m.Default, 0, len(prefix), 1))
		b.WriteString(";\n")
	}

	return []byte(b.String())
}

func printImport(imp Import) string {
	from := strconv.Quote(imp.From)
	if imp.Default != "" {
		return "import " + imp.Default + " from " + from + ";"
	}
	return "import { " + strings.Join(imp.Named, ", ") + " } from " + from + ";"
}

// render prints e starting at column col, with trail columns of text that
// must follow it on the same line.
func render(e Expr, depth, col, trail int) string {
	f := flat(e)
	if col+len(f)+trail <= printWidth {
		return f
	}

	switch v := e.(type) {
	case *Object:
		return renderObject(v, depth)
	case *Call:
		return renderCall(v, depth, col, trail)
	default:
		return f
	}
}

func renderObject(o *Object, depth int) string {
	if len(o.Members) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteString("{\n")
	inner := strings.Repeat("\t", depth+1)
	for _, m := range o.Members {
		key := printKey(m.Key)
		b.WriteString(inner)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(render(m.Value, depth+1, (depth+1)*indentWidth+len(key)+2, 1))
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteByte('}')
	return b.String()
}

func renderCall(c *Call, depth, col, trail int) string {
	callee := flat(c.Callee) + "("

	// A sole object argument hugs the parentheses: f({ ... })
	if len(c.Args) == 1 {
		if _, ok := c.Args[0].(*Object); ok {
			return callee + render(c.Args[0], depth, col+len(callee), trail+1) + ")"
		}
	}

	var b strings.Builder
	b.WriteString(callee)
	b.WriteByte('\n')
	inner := strings.Repeat("\t", depth+1)
	for _, arg := range c.Args {
		b.WriteString(inner)
		b.WriteString(render(arg, depth+1, (depth+1)*indentWidth, 1))
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteByte(')')
	return b.String()
}

// flat renders e on a single line.
func flat(e Expr) string {
	switch v := e.(type) {
	case Ident:
		return string(v)
	case String:
		return strconv.Quote(string(v))
	case *Object:
		if len(v.Members) == 0 {
			return "{}"
		}
		parts := make([]string, len(v.Members))
		for i, m := range v.Members {
			parts[i] = printKey(m.Key) + ": " + flat(m.Value)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case *Call:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = flat(a)
		}
		return flat(v.Callee) + "(" + strings.Join(args, ", ") + ")"
	default:
		return ""
	}
}

// printKey quotes a property key only when it is not a valid identifier.
func printKey(key string) string {
	if identifierRe.MatchString(key) {
		return key
	}
	return strconv.Quote(key)
}
