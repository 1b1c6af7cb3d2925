package pargs

import (
	"fmt"
	"strings"
)

// GenerateDump renders a human-readable snapshot of the schema and bound
// state, for debugging host integrations. argv is echoed as received.
func (p *Parser) GenerateDump(argv []string) string {
	var sb strings.Builder

	sb.WriteString("Pargs Parser Dump\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString("Parser Information:\n")
	sb.WriteString("  Executable: " + orNotSet(p.execName) + "\n")
	sb.WriteString("  Description: " + orNotSet(p.progDesc) + "\n")
	sb.WriteString("  Custom Usage: " + orNotSet(p.usage) + "\n\n")

	sb.WriteString("Arguments to Parse:\n")
	if len(argv) == 0 {
		sb.WriteString("  <no arguments>\n")
	}
	for i, a := range argv {
		sb.WriteString(fmt.Sprintf("  [%d]: %q\n", i, a))
	}
	sb.WriteString("\n")

	sb.WriteString("Options:\n")
	sb.WriteString(fmt.Sprintf("  Total: %d\n", len(p.options)))
	for i, o := range p.options {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, p.describeOption(o)))
	}
	sb.WriteString("\n")

	sb.WriteString("Positional Slots:\n")
	sb.WriteString(fmt.Sprintf("  Total: %d\n", len(p.positional)))
	for i, slot := range p.positional {
		if slot.value == "" {
			sb.WriteString(fmt.Sprintf("  [%d] %s <unset>\n", i, slot.name))
		} else {
			sb.WriteString(fmt.Sprintf("  [%d] %s = %q\n", i, slot.name, slot.value))
		}
	}
	sb.WriteString("\n")

	sb.WriteString("Groups:\n")
	if len(p.groupOrder) == 0 {
		sb.WriteString("  none\n")
	}
	for _, name := range p.groupOrder {
		grp := p.groups[name]
		req := "optional"
		if grp.mandatory {
			req = "mandatory"
		}
		var members []string
		for _, k := range grp.members {
			members = append(members, k.String())
		}
		sb.WriteString(fmt.Sprintf("  %s (%s): %s\n", name, req, strings.Join(members, ", ")))
	}

	return sb.String()
}

func (p *Parser) describeOption(o *option) string {
	var sb strings.Builder
	sb.WriteString(o.key.String())
	sb.WriteString(" type:" + typeName(o.typ))

	if p.isMandatory(o.key) {
		sb.WriteString(" required")
	} else {
		sb.WriteString(" optional")
	}

	if o.hasDefault {
		sb.WriteString(fmt.Sprintf(" (default:%q)", o.value))
	}
	if o.isSet {
		sb.WriteString(" set")
	}
	if g, ok := p.groupOf[o.key]; ok {
		sb.WriteString(" group:" + g)
	}
	sb.WriteString(fmt.Sprintf(" usage:%q", o.desc))

	return sb.String()
}

func typeName(t ArgType) string {
	switch t {
	case BoolArg:
		return "bool"
	case IntArg:
		return "int"
	case HexArg:
		return "hex"
	case FloatArg:
		return "float"
	case StrArg:
		return "str"
	}
	return "unknown"
}

func orNotSet(s string) string {
	if s == "" {
		return "<not set>"
	}
	return s
}
