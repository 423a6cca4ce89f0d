package lexer

// MaxWindowDefault bounds the lookahead slice a single step hands to the
// rule patterns. It caps the per-step cost of pattern.Func and
// pattern.Regexp rules on very long inputs; no single token can be longer
// than the window.
const MaxWindowDefault = 1024

// Options configures a Ruleset.
type Options struct {
	// MaxWindow overrides the lookahead bound; <= 0 means MaxWindowDefault.
	MaxWindow int
}

func (o Options) withDefaults() Options {
	if o.MaxWindow <= 0 {
		o.MaxWindow = MaxWindowDefault
	}
	return o
}
