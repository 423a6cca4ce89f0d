// Package driver orchestrates tokenization over files and directories.
package driver

import (
	"fmt"

	"fortio.org/safecast"

	"plexer/internal/diag"
	"plexer/internal/rulefile"
	"plexer/internal/source"
)

// Token is one recognized token with its location in the file set.
type Token struct {
	Kind string
	Text string
	Span source.Span
}

// TokenizeResult holds everything a formatter needs after a scan.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []Token
	Bag     *diag.Bag
}

// Tokenize loads one file and scans it with the compiled rule set.
// Lexical errors land in the Bag (capped at maxErrors); only I/O failures
// are returned as an error.
func Tokenize(path string, rules *rulefile.Set, maxErrors int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, rules, maxErrors), nil
}

// TokenizeVirtual scans in-memory content (stdin, tests) under the given name.
func TokenizeVirtual(name string, content []byte, rules *rulefile.Set, maxErrors int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeLoaded(fs, fileID, rules, maxErrors)
}

// tokenizeLoaded гонит весь файл через лексер, восстанавливая span каждого
// элемента по позиции курсора до и после шага.
func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, rules *rulefile.Set, maxErrors int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxErrors)

	lx := rules.Ruleset.Tokenize(string(file.Content))

	var tokens []Token
	for {
		start := lx.Cursor()
		res, ok := lx.Next()
		if !ok {
			break
		}
		span := source.Span{
			File:  fileID,
			Start: u32(start),
			End:   u32(lx.Cursor()),
		}

		if res.Err != nil {
			bag.Add(diag.Diagnostic{Span: span, Message: res.Err.Error()})
			continue
		}
		if rules.Skip(res.Token.Kind) {
			continue
		}
		tokens = append(tokens, Token{
			Kind: res.Token.Kind,
			Text: res.Token.Text,
			Span: span,
		})
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

func u32(v int) uint32 {
	out, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return out
}
