package pargs

import (
	"fmt"
	"strings"
)

// ParseError is returned by LoadArguments when the argument vector itself is
// malformed, i.e. an option token appears after positional binding has begun.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string {
	return e.msg
}

// ValidationError is returned by LoadArguments when the bound state violates
// a schema constraint. Exactly one of the two sides is populated per error:
// the required side (MissingOptions and/or MissingGroups) or the conflict
// side (Conflicts). When both sides fail, the required side is reported
// first; the conflict surfaces on a subsequent load once the required side
// is satisfied.
type ValidationError struct {
	MissingOptions []Key    // required options outside any group, not set
	MissingGroups  []string // mandatory groups with no member set
	Conflicts      []string // groups with two or more members set

	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// MissingPositionalError is returned by LoadArguments when fewer positional
// tokens were bound than slots registered.
type MissingPositionalError struct {
	Have int
	Want int
}

func (e *MissingPositionalError) Error() string {
	return "Missing positional arguments. Check program usage."
}

// ConversionError is returned by the typed accessors when a stored string
// cannot be converted to the requested scalar. Index is -1 for options.
type ConversionError struct {
	Value string
	Index int
}

func (e *ConversionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("Cannot convert positional %d to given type. (%s)", e.Index, e.Value)
	}
	return fmt.Sprintf("Cannot convert option to given type. (%s)", e.Value)
}

// IndexError is returned by the positional accessors for an out-of-range
// index.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return "Positional argument index out of range."
}

func (p *Parser) newRequiredError(missing []Key, missingGroups []string) *ValidationError {
	var sb strings.Builder
	if len(missing) > 0 {
		sb.WriteString("Missing required options:\n")
		for _, k := range missing {
			sb.WriteString(k.String() + "\n")
		}
	}
	if len(missingGroups) > 0 {
		sb.WriteString("At least one option from these groups must be set:\n")
		for _, g := range missingGroups {
			sb.WriteString(g + "\n")
			for _, k := range p.groups[g].members {
				sb.WriteString("\t" + k.String() + "\n")
			}
		}
	}
	return &ValidationError{
		MissingOptions: missing,
		MissingGroups:  missingGroups,
		msg:            sb.String(),
	}
}

func (p *Parser) newConflictError(conflicts []string) *ValidationError {
	var sb strings.Builder
	sb.WriteString("Conflicting options used in these groups:\n")
	for _, g := range conflicts {
		sb.WriteString(g + "\n")
		for _, k := range p.groups[g].members {
			if o := p.optionByKey(k); o != nil && o.isSet {
				sb.WriteString("\t" + k.String() + "\n")
			}
		}
	}
	return &ValidationError{
		Conflicts: conflicts,
		msg:       sb.String(),
	}
}
