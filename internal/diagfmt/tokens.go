package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"plexer/internal/driver"
	"plexer/internal/source"
)

// TokenOutput is the machine-readable token shape shared by the JSON and
// msgpack dumps.
type TokenOutput struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Line  uint32 `json:"line" msgpack:"line"`
	Col   uint32 `json:"col" msgpack:"col"`
}

func tokenOutputs(tokens []driver.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		startPos, _ := fs.Resolve(tok.Span)
		out = append(out, TokenOutput{
			Kind:  tok.Kind,
			Text:  tok.Text,
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Line:  startPos.Line,
			Col:   startPos.Col,
		})
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
func FormatTokensPretty(w io.Writer, tokens []driver.Token, fs *source.FileSet) error {
	// ширина колонки текста по самому широкому токену (с учётом wide рун)
	textWidth := 0
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = fmt.Sprintf("%q", tok.Text)
		if w := runewidth.StringWidth(quoted[i]); w > textWidth {
			textWidth = w
		}
	}

	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		pad := strings.Repeat(" ", textWidth-runewidth.StringWidth(quoted[i]))
		if _, err := fmt.Fprintf(w, "%4d: %-15s %s%s at %d:%d-%d:%d\n",
			i+1, tok.Kind, quoted[i], pad,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате.
func FormatTokensJSON(w io.Writer, tokens []driver.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokenOutputs(tokens, fs))
}

// FormatTokensMsgpack выводит токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []driver.Token, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(tokenOutputs(tokens, fs))
}
