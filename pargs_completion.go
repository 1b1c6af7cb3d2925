package pargs

import (
	"fmt"
	"io"
	"strings"
)

// GenerateBashCompletion writes a bash completion script for prog offering
// every registered option spelling.
func (p *Parser) GenerateBashCompletion(w io.Writer, prog string) error {
	fn := shellIdent(prog)
	_, err := fmt.Fprintf(w, bashCompletionTemplate,
		prog, fn, strings.Join(p.optionWords(), " "), fn, prog)
	return err
}

// GenerateZshCompletion writes a zsh completion script for prog offering
// every registered option spelling.
func (p *Parser) GenerateZshCompletion(w io.Writer, prog string) error {
	fn := shellIdent(prog)
	_, err := fmt.Fprintf(w, zshCompletionTemplate,
		prog, fn, strings.Join(p.optionWords(), " "), fn, prog)
	return err
}

// optionWords lists the dashed spellings of every registered option, in
// registration order.
func (p *Parser) optionWords() []string {
	var words []string
	for _, o := range p.options {
		if o.key.Short != "" {
			words = append(words, "-"+o.key.Short)
		}
		if o.key.Long != "" {
			words = append(words, "--"+o.key.Long)
		}
	}
	return words
}

// shellIdent makes prog safe to embed in a shell function name.
func shellIdent(prog string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, prog)
}
