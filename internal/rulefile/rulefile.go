// Package rulefile loads lexer rule tables from TOML files.
//
// A rule file is an ordered list of [[rule]] tables; order is the match
// priority. Each rule names its token kind and carries exactly one
// pattern field: char, chars, literal, literals or regex. Rules marked
// skip = true are matched normally but omitted from driver output.
package rulefile

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"plexer/lexer"
	"plexer/pattern"
)

// Token is the token shape produced by file-defined rule sets: identity
// is the rule's name tag, payload is the matched text.
type Token struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
}

// Config mirrors the TOML document.
type Config struct {
	MaxWindow int          `toml:"max-window"`
	Rules     []RuleConfig `toml:"rule"`
}

// RuleConfig mirrors one [[rule]] table.
type RuleConfig struct {
	Name     string   `toml:"name"`
	Char     string   `toml:"char"`
	Chars    []string `toml:"chars"`
	Literal  string   `toml:"literal"`
	Literals []string `toml:"literals"`
	Regex    string   `toml:"regex"`
	Skip     bool     `toml:"skip"`
}

// Set is a compiled rule file: the priority-ordered ruleset plus the
// skip marks.
type Set struct {
	Ruleset *lexer.Ruleset[Token]
	skip    map[string]bool
}

// Skip reports whether tokens of the given kind are omitted from output.
func (s *Set) Skip(kind string) bool {
	return s.skip[kind]
}

// Load reads and compiles a rule file.
func Load(path string) (*Set, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rule file %q: %w", path, err)
	}
	set, err := Compile(&cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid rule file %q: %w", path, err)
	}
	return set, nil
}

// Compile validates a Config and builds the ruleset.
func Compile(cfg *Config) (*Set, error) {
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("no rules declared")
	}

	rules := make([]lexer.Rule[Token], 0, len(cfg.Rules))
	skip := make(map[string]bool)

	for i, rc := range cfg.Rules {
		if rc.Name == "" {
			return nil, fmt.Errorf("rule %d: missing name", i+1)
		}
		p, err := compilePattern(rc)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i+1, rc.Name, err)
		}
		kind := rc.Name
		rules = append(rules, lexer.Rule[Token]{
			Pattern: p,
			Build: func(text string) Token {
				return Token{Kind: kind, Text: text}
			},
		})
		if rc.Skip {
			skip[rc.Name] = true
		}
	}

	return &Set{
		Ruleset: lexer.NewRuleset(lexer.Options{MaxWindow: cfg.MaxWindow}, rules...),
		skip:    skip,
	}, nil
}

// compilePattern строит pattern по единственному заполненному полю правила.
func compilePattern(rc RuleConfig) (pattern.Pattern, error) {
	declared := 0
	if rc.Char != "" {
		declared++
	}
	if len(rc.Chars) > 0 {
		declared++
	}
	if rc.Literal != "" {
		declared++
	}
	if len(rc.Literals) > 0 {
		declared++
	}
	if rc.Regex != "" {
		declared++
	}
	if declared == 0 {
		return nil, fmt.Errorf("no pattern declared (expected one of char, chars, literal, literals, regex)")
	}
	if declared > 1 {
		return nil, fmt.Errorf("more than one pattern declared (expected exactly one of char, chars, literal, literals, regex)")
	}

	switch {
	case rc.Char != "":
		r, err := singleRune(rc.Char)
		if err != nil {
			return nil, fmt.Errorf("char: %w", err)
		}
		return pattern.Char(r), nil

	case len(rc.Chars) > 0:
		set := make(pattern.CharSet, 0, len(rc.Chars))
		for _, s := range rc.Chars {
			r, err := singleRune(s)
			if err != nil {
				return nil, fmt.Errorf("chars: %w", err)
			}
			set = append(set, r)
		}
		return set, nil

	case rc.Literal != "":
		return pattern.Literal(rc.Literal), nil

	case len(rc.Literals) > 0:
		for _, l := range rc.Literals {
			if l == "" {
				return nil, fmt.Errorf("literals: empty literal never matches")
			}
		}
		return pattern.LiteralSet(rc.Literals), nil

	default:
		re, err := regexp.Compile(rc.Regex)
		if err != nil {
			return nil, fmt.Errorf("regex: %w", err)
		}
		return pattern.Regex(re), nil
	}
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError && size == 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	return r, nil
}
