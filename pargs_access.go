package pargs

import (
	"strconv"
	"strings"
)

// Raw returns the stored value string for the matching option, or "" when no
// option matches. No conversion is performed.
func (p *Parser) Raw(name string) string {
	if o := p.findOption(name); o != nil {
		return o.value
	}
	return ""
}

// RawPositional returns positional slot i's value string without conversion.
func (p *Parser) RawPositional(i int) (string, error) {
	if i < 0 || i >= len(p.positional) {
		return "", &IndexError{Index: i}
	}
	return p.positional[i].value, nil
}

// ParseOptionBool resolves name and converts per the declared type: a BOOL
// option yields its set-ness, anything else parses the stored string as a
// bool. Unknown or unset options yield false.
func (p *Parser) ParseOptionBool(name string) (bool, error) {
	o := p.findOption(name)
	if o == nil || !o.isSet {
		return false, nil
	}
	if o.typ == BoolArg {
		return o.isSet, nil
	}
	v, err := strconv.ParseBool(o.value)
	if err != nil {
		return false, &ConversionError{Value: o.value, Index: -1}
	}
	return v, nil
}

// ParseOptionInt resolves name and converts the stored string to an int.
// BOOL options coerce to 1. HEX options parse base-16, with or without a
// leading 0x. Unknown or unset options yield 0.
func (p *Parser) ParseOptionInt(name string) (int, error) {
	v, err := p.ParseOptionInt64(name)
	return int(v), err
}

// ParseOptionInt64 is ParseOptionInt with 64-bit range.
func (p *Parser) ParseOptionInt64(name string) (int64, error) {
	o := p.findOption(name)
	if o == nil || !o.isSet {
		return 0, nil
	}
	if o.typ == BoolArg {
		return 1, nil
	}
	v, err := parseInt(o.value, o.typ)
	if err != nil {
		return 0, &ConversionError{Value: o.value, Index: -1}
	}
	return v, nil
}

// ParseOptionFloat resolves name and converts the stored string to a
// float64. BOOL options coerce to 1. Unknown or unset options yield 0.
func (p *Parser) ParseOptionFloat(name string) (float64, error) {
	o := p.findOption(name)
	if o == nil || !o.isSet {
		return 0, nil
	}
	if o.typ == BoolArg {
		return 1, nil
	}
	v, err := strconv.ParseFloat(o.value, 64)
	if err != nil {
		return 0, &ConversionError{Value: o.value, Index: -1}
	}
	return v, nil
}

// ParseOptionString resolves name and returns the stored string. A set BOOL
// option coerces to "true". Unknown or unset options yield "".
func (p *Parser) ParseOptionString(name string) (string, error) {
	o := p.findOption(name)
	if o == nil || !o.isSet {
		return "", nil
	}
	if o.typ == BoolArg {
		return strconv.FormatBool(o.isSet), nil
	}
	return o.value, nil
}

// ParsePositionalInt converts positional slot i to an int.
func (p *Parser) ParsePositionalInt(i int) (int, error) {
	v, err := p.ParsePositionalInt64(i)
	return int(v), err
}

// ParsePositionalInt64 converts positional slot i to an int64.
func (p *Parser) ParsePositionalInt64(i int) (int64, error) {
	raw, err := p.RawPositional(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ConversionError{Value: raw, Index: i}
	}
	return v, nil
}

// ParsePositionalFloat converts positional slot i to a float64.
func (p *Parser) ParsePositionalFloat(i int) (float64, error) {
	raw, err := p.RawPositional(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConversionError{Value: raw, Index: i}
	}
	return v, nil
}

// ParsePositionalString returns positional slot i's value.
func (p *Parser) ParsePositionalString(i int) (string, error) {
	return p.RawPositional(i)
}

func parseInt(s string, typ ArgType) (int64, error) {
	if typ == HexArg {
		h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
		return strconv.ParseInt(h, 16, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}
