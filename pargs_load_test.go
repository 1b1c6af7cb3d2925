package pargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingRequiredOption(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"", "input"}, Required, StrArg, ""))

	err := p.LoadArguments([]string{"./prog"})

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []Key{{"", "input"}}, verr.MissingOptions)
	assert.Contains(t, err.Error(), "Missing required options:")
	assert.Contains(t, err.Error(), "--input")
}

func TestRequiredOptionWithValue(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"", "input"}, Required, StrArg, ""))

	err := p.LoadArguments([]string{"./prog", "--input", "file.txt"})

	assert.NoError(t, err)
	assert.Equal(t, "file.txt", p.Raw("input"))
	got, err := p.ParseOptionString("input")
	assert.NoError(t, err)
	assert.Equal(t, "file.txt", got)
}

func TestBooleanFlag(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"v", ""}, Optional, BoolArg, ""))

	err := p.LoadArguments([]string{"./prog", "-v"})

	assert.NoError(t, err)
	assert.True(t, p.OptionIsSet("v"))
	got, err := p.ParseOptionBool("v")
	assert.NoError(t, err)
	assert.True(t, got)
}

func TestSingleAndDoubleDashAreEquivalent(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"v", "verbose"}, Optional, BoolArg, ""))

	assert.NoError(t, p.LoadArguments([]string{"./prog", "--v"}))
	assert.True(t, p.OptionIsSet("verbose"))

	q := NewParser("")
	assert.True(t, q.RegisterOption(Key{"v", "verbose"}, Optional, BoolArg, ""))

	assert.NoError(t, q.LoadArguments([]string{"./prog", "-verbose"}))
	assert.True(t, q.OptionIsSet("v"))
}

func TestMandatoryGroup(t *testing.T) {
	newGroupParser := func() *Parser {
		p := NewParser("")
		assert.True(t, p.AddMutuallyExclusiveGroup("g", true))
		assert.True(t, p.RegisterOption(Key{"a", ""}, InheritGroup, BoolArg, "", WithGroup("g")))
		assert.True(t, p.RegisterOption(Key{"b", ""}, InheritGroup, BoolArg, "", WithGroup("g")))
		return p
	}

	p := newGroupParser()
	err := p.LoadArguments([]string{"./prog"})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"g"}, verr.MissingGroups)

	p = newGroupParser()
	assert.NoError(t, p.LoadArguments([]string{"./prog", "-a"}))
	assert.True(t, p.OptionIsSet("a"))

	p = newGroupParser()
	err = p.LoadArguments([]string{"./prog", "-a", "-b"})
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"g"}, verr.Conflicts)
	assert.Contains(t, err.Error(), "Conflicting options used in these groups:")
	assert.Contains(t, err.Error(), "g\n")
}

func TestPositionalCannotPrecedeOption(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"v", ""}, Optional, BoolArg, ""))
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "foo", "-v"})

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, "Positional arguments cannot precede options.", err.Error())
}

func TestOptionThenPositional(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"v", ""}, Optional, BoolArg, ""))
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "-v", "foo"})

	assert.NoError(t, err)
	got, err := p.RawPositional(0)
	assert.NoError(t, err)
	assert.Equal(t, "foo", got)
}

func TestMissingPositional(t *testing.T) {
	p := NewParser("")
	p.RegisterPositional(2)

	err := p.LoadArguments([]string{"./prog", "only-one"})

	var merr *MissingPositionalError
	assert.ErrorAs(t, err, &merr)
	assert.Equal(t, 1, merr.Have)
	assert.Equal(t, 2, merr.Want)
}

func TestHelpShortCircuitsValidation(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"", "x"}, Required, StrArg, ""))
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "--help"})

	assert.NoError(t, err)
	assert.True(t, p.OptionIsSet("help"))
}

func TestExecNameExtraction(t *testing.T) {
	p := NewParser("")

	assert.NoError(t, p.LoadArguments([]string{"/usr/local/bin/prog"}))

	assert.Equal(t, "prog", p.ExecName())
}

func TestUnknownOptionIsSkipped(t *testing.T) {
	p := NewParser("")
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "--nope", "val"})

	assert.NoError(t, err)
	got, err := p.RawPositional(0)
	assert.NoError(t, err)
	assert.Equal(t, "val", got)
}

func TestPendingOptionKeepsDefaultWithoutValue(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"c", "count"}, Optional, IntArg, "", WithDefault("5")))

	err := p.LoadArguments([]string{"./prog", "--count"})

	assert.NoError(t, err)
	assert.True(t, p.OptionIsSet("count"))
	got, err := p.ParseOptionInt("count")
	assert.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestDoubleDashEndsOptions(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"v", ""}, Optional, BoolArg, ""))
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "--", "-v"})

	assert.NoError(t, err)
	got, err := p.RawPositional(0)
	assert.NoError(t, err)
	assert.Equal(t, "-v", got)
	assert.False(t, p.OptionIsSet("v"))
}

func TestLoneDashBindsPositionally(t *testing.T) {
	p := NewParser("")
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "-"})

	assert.NoError(t, err)
	got, err := p.RawPositional(0)
	assert.NoError(t, err)
	assert.Equal(t, "-", got)
}

func TestLoadTwiceIsIdempotent(t *testing.T) {
	p := NewParser("")
	assert.True(t, p.RegisterOption(Key{"", "input"}, Required, StrArg, ""))
	p.RegisterPositional(1)

	argv := []string{"./prog", "--input", "file.txt", "pos"}

	assert.NoError(t, p.LoadArguments(argv))
	assert.NoError(t, p.LoadArguments(argv))

	assert.Equal(t, "file.txt", p.Raw("input"))
	got, err := p.RawPositional(0)
	assert.NoError(t, err)
	assert.Equal(t, "pos", got)
}

func TestExtraPositionalTokensAreIgnored(t *testing.T) {
	p := NewParser("")
	p.RegisterPositional(1)

	err := p.LoadArguments([]string{"./prog", "one", "two"})

	assert.NoError(t, err)
	got, err := p.RawPositional(0)
	assert.NoError(t, err)
	assert.Equal(t, "one", got)
}
