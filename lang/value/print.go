package value

import (
	"fmt"
	"strings"
)

// Sprint renders v per the language's print grammar: Number is %g, String
// is double-quoted without re-escaping, List is "(e1 e2 …)", Lambda is
// "(lambda params body…)", Variable prints as its identifier, and nil -
// whether a literal Go nil or a cell explicitly tagged Nil - prints as
// "nil".
func Sprint(v *Value) string {
	var sb strings.Builder
	sprint(&sb, v)
	return sb.String()
}

func sprint(sb *strings.Builder, v *Value) {
	if IsNil(v) {
		sb.WriteString("nil")
		return
	}
	switch v.tag {
	case Number:
		fmt.Fprintf(sb, "%g", v.num)
	case String:
		sb.WriteByte('"')
		sb.WriteString(v.str)
		sb.WriteByte('"')
	case Variable:
		sb.WriteString(v.str)
	case List:
		sb.WriteByte('(')
		for e := v.head; e != nil; e = e.next {
			sprint(sb, e)
			if e.next != nil {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(')')
	case Lambda:
		sb.WriteString("(lambda ")
		for e := v.head.next; e != nil; e = e.next {
			sprint(sb, e)
			if e.next != nil {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(')')
	case Special:
		fmt.Fprintf(sb, "special@%p", v.special)
	default:
		sb.WriteString("nil")
	}
}

// Print writes v's textual representation to ctx.Stdout.
func (ctx *Context) Print(v *Value) {
	fmt.Fprint(ctx.Stdout, Sprint(v))
}
