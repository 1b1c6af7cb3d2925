package pargs

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
)

// optWidth is the name column width in the help body.
const optWidth = 25

// GenerateUsage renders the one-line usage text: the executable name followed
// by either the caller-supplied usage string or a synthesized argument list.
// In the synthesized form required options come first, optional options are
// bracketed, the implicit help option is omitted, and positional names close
// the line.
func (p *Parser) GenerateUsage() string {
	initColorFromEnv()

	var sb strings.Builder
	sb.WriteString(GreenBoldS("Usage:") + " ")
	sb.WriteString(p.execName + " ")

	if p.usage != "" {
		sb.WriteString(p.usage)
		return sb.String()
	}

	var req, opt string
	for _, o := range p.options {
		if o.key.Short == "h" || o.key.Long == "help" {
			continue
		}

		arg := usageName(o.key) + usageTypeToken(o.typ)

		if p.isMandatory(o.key) {
			req += arg + " "
		} else {
			opt += "[ " + arg + " ] "
		}
	}
	sb.WriteString(req)
	sb.WriteString(opt)

	for _, slot := range p.positional {
		sb.WriteString(slot.name + " ")
	}

	return strings.TrimRight(sb.String(), " ")
}

// GenerateHelp renders the full help text: the usage line, the program
// description, and one entry per registered option with its description
// (newlines indented to the name column) and default value when present.
func (p *Parser) GenerateHelp() string {
	var sb strings.Builder

	sb.WriteString(p.GenerateUsage() + "\n")
	sb.WriteString(p.progDesc + "\n\n")
	sb.WriteString(GreenBoldS("Available options:") + "\n")

	pad := strings.Repeat(" ", optWidth)
	for _, o := range p.options {
		nameCol := helpName(o.key)
		if n := utf8.RuneCountInString(nameCol); n < optWidth {
			nameCol += strings.Repeat(" ", optWidth-n)
		}

		lines := strings.Split(o.desc, "\n")
		sb.WriteString(nameCol + lines[0] + "\n")
		for _, line := range lines[1:] {
			sb.WriteString(pad + line + "\n")
		}

		if o.hasDefault {
			sb.WriteString(pad + "Default value: " + o.value + "\n")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteHelpText writes the help text to w.
func (p *Parser) WriteHelpText(w io.Writer) {
	fmt.Fprint(w, p.GenerateHelp())
}

// PrintHelpText writes the help text to the package stdout writer.
func (p *Parser) PrintHelpText() {
	p.WriteHelpText(stdoutWriter)
}

// usageName formats a key for the synthesized usage line.
func usageName(k Key) string {
	switch {
	case k.Short != "" && k.Long != "":
		return "-" + k.Short + " | --" + k.Long
	case k.Short != "":
		return "-" + k.Short
	default:
		return "--" + k.Long
	}
}

// helpName formats a key for the help body name column.
func helpName(k Key) string {
	switch {
	case k.Short != "" && k.Long != "":
		return "-" + k.Short + ", --" + k.Long
	case k.Short != "":
		return "-" + k.Short
	default:
		return "--" + k.Long
	}
}

func usageTypeToken(t ArgType) string {
	switch t {
	case HexArg:
		return " [0x]<HEX>"
	case IntArg:
		return " <INT>"
	case FloatArg:
		return " <FLOAT>"
	case StrArg:
		return " <STRING>"
	default:
		return ""
	}
}

func (p *Parser) isMandatory(key Key) bool {
	for _, m := range p.mandatory {
		if m == key {
			return true
		}
	}
	return false
}

func initColorFromEnv() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PARGS_COLOR"))) {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		// auto: let amterp/color decide based on tty
	}
}
