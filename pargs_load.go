package pargs

import (
	"os"
	"strings"
)

// LoadArguments consumes the host's argument vector, binding option and
// positional tokens to the schema, then validates the result. argv[0] is the
// program path; everything after the final path separator becomes the
// executable name used in usage text.
//
// Binding rules, left to right:
//   - "--" ends option parsing; every later token binds positionally.
//   - An option-shaped token (leading dashes stripped) resolves against both
//     spellings. Unknown names are skipped. A non-BOOL match waits for the
//     next value token.
//   - Any other token feeds the waiting option, or the next positional slot.
//   - An option-shaped token after a positional has bound is a ParseError.
//
// When the help option is set, validation is skipped entirely. Otherwise
// missing required options and mandatory groups aggregate into one
// ValidationError, group conflicts raise their own ValidationError once the
// required side is clean, and unfilled positional slots raise a
// MissingPositionalError.
func (p *Parser) LoadArguments(argv []string) error {
	var args []string
	if len(argv) > 0 {
		p.execName = execBase(argv[0])
		args = argv[1:]
	}

	// reset binder state in case this is called multiple times
	p.posCursor = 0

	var pending *option
	seenDashDash := false

	for _, arg := range args {
		if arg == "--" && !seenDashDash {
			seenDashDash = true
			continue
		}

		if !seenDashDash && len(arg) > 1 && arg[0] == '-' {
			if p.posCursor > 0 {
				return &ParseError{msg: "Positional arguments cannot precede options."}
			}
			pending = nil
			name := strings.TrimLeft(arg, "-")
			if o := p.findOption(name); o != nil {
				o.isSet = true
				if o.typ != BoolArg {
					pending = o
				}
			}
			continue
		}

		// value for a waiting option, else the next positional slot
		if pending != nil && !seenDashDash {
			pending.value = arg
			pending = nil
		} else if p.posCursor < len(p.positional) {
			p.positional[p.posCursor].value = arg
			p.posCursor++
		}
	}

	if p.OptionIsSet("help") {
		return nil
	}

	return p.validate()
}

func (p *Parser) validate() error {
	missing := p.checkMandatoryOptions()
	missingGroups := p.checkMandatoryGroups()

	if len(missing) > 0 || len(missingGroups) > 0 {
		return p.newRequiredError(missing, missingGroups)
	}

	if conflicts := p.checkConflicts(); len(conflicts) > 0 {
		return p.newConflictError(conflicts)
	}

	if p.posCursor < len(p.positional) {
		return &MissingPositionalError{Have: p.posCursor, Want: len(p.positional)}
	}

	return nil
}

// checkMandatoryOptions collects unset required options that belong to no
// group; grouped keys are accounted for by their group instead.
func (p *Parser) checkMandatoryOptions() []Key {
	var missing []Key
	for _, k := range p.mandatory {
		if p.inAnyGroup(k) {
			continue
		}
		if o := p.optionByKey(k); o != nil && !o.isSet {
			missing = append(missing, k)
		}
	}
	return missing
}

func (p *Parser) checkMandatoryGroups() []string {
	var missing []string
	for _, name := range p.groupOrder {
		grp := p.groups[name]
		if !grp.mandatory {
			continue
		}
		anySet := false
		for _, k := range grp.members {
			if o := p.optionByKey(k); o != nil && o.isSet {
				anySet = true
				break
			}
		}
		if !anySet {
			missing = append(missing, name)
		}
	}
	return missing
}

func (p *Parser) checkConflicts() []string {
	var conflicts []string
	for _, name := range p.groupOrder {
		set := 0
		for _, k := range p.groups[name].members {
			if o := p.optionByKey(k); o != nil && o.isSet {
				set++
			}
		}
		if set > 1 {
			conflicts = append(conflicts, name)
		}
	}
	return conflicts
}

// execBase strips everything up to and including the final path separator.
func execBase(path string) string {
	if i := strings.LastIndexByte(path, os.PathSeparator); i >= 0 {
		return path[i+1:]
	}
	return path
}
