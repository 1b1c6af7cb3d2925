package pargs

// ArgType dictates how an option's bound value renders in usage text and
// how the typed accessors convert it.
type ArgType int

const (
	BoolArg  ArgType = iota // flag without a value
	IntArg                  // decimal integer
	HexArg                  // base-16 integer, optional 0x prefix
	FloatArg                // textual float
	StrArg                  // plain string
)

// Requirement controls whether an option must be present after binding.
type Requirement int

const (
	Optional     Requirement = iota
	Required                 // option itself must be set
	InheritGroup             // requiredness follows the option's group
)

// Key identifies an option by its short and long spellings. Either may be
// empty, but not both.
type Key struct {
	Short string
	Long  string
}

// Empty reports whether both spellings are missing.
func (k Key) Empty() bool {
	return k.Short == "" && k.Long == ""
}

// String renders the key in the diagnostic form "-s/--long", substituting a
// bare "-" for an absent spelling.
func (k Key) String() string {
	s := "-"
	if k.Short != "" {
		s = "-" + k.Short
	}
	l := "-"
	if k.Long != "" {
		l = "--" + k.Long
	}
	return s + "/" + l
}

// option is a registered option descriptor. The binder mutates only value
// and isSet; everything else is fixed at registration.
type option struct {
	key        Key
	typ        ArgType
	value      string // most recently bound raw string
	isSet      bool
	hasDefault bool
	desc       string
}

// posSlot is one positional argument slot, filled by the binder in order.
type posSlot struct {
	name  string
	value string
}

// group is a named set of mutually exclusive option keys.
type group struct {
	members   []Key
	mandatory bool // at least one member must be set
}

// Parser holds the registered schema and, after LoadArguments, the bound
// state. It is not safe for concurrent mutation.
type Parser struct {
	execName string
	progDesc string
	usage    string // caller-supplied usage line, overrides synthesis

	options  []*option // registration order
	shortIdx map[string]*option
	longIdx  map[string]*option

	positional []posSlot
	posCursor  int

	mandatory  []Key // required set, in insertion order
	groups     map[string]*group
	groupOrder []string
	groupOf    map[Key]string
}

// NewParser creates a parser with the given program description. The help
// option ("h", "help") is registered implicitly.
func NewParser(desc string) *Parser {
	p := &Parser{
		progDesc: desc,
		shortIdx: make(map[string]*option),
		longIdx:  make(map[string]*option),
		groups:   make(map[string]*group),
		groupOf:  make(map[Key]string),
	}
	p.RegisterOption(Key{"h", "help"}, Optional, BoolArg, "Show help text and exit")
	return p
}

// SetUsageText replaces the synthesized usage line with a caller-supplied one.
func (p *Parser) SetUsageText(txt string) *Parser {
	p.usage = txt
	return p
}

// ExecName returns the executable name extracted by the last LoadArguments.
func (p *Parser) ExecName() string {
	return p.execName
}
