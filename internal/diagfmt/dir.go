package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"plexer/internal/driver"
	"plexer/internal/source"
)

// FileTokens is the machine-readable per-file dump in directory mode.
type FileTokens struct {
	Path   string        `json:"path" msgpack:"path"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

func fileTokens(results []driver.TokenizeDirResult, fs *source.FileSet) []FileTokens {
	out := make([]FileTokens, 0, len(results))
	for _, res := range results {
		if res.LoadErr != nil {
			continue
		}
		out = append(out, FileTokens{
			Path:   res.Path,
			Tokens: tokenOutputs(res.Tokens, fs),
		})
	}
	return out
}

// FormatDirTokensPretty выводит токены каждого файла с заголовком-путём.
func FormatDirTokensPretty(w io.Writer, results []driver.TokenizeDirResult, fs *source.FileSet) error {
	for _, res := range results {
		if res.LoadErr != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "== %s (%d tokens)\n", res.Path, len(res.Tokens)); err != nil {
			return err
		}
		if err := FormatTokensPretty(w, res.Tokens, fs); err != nil {
			return err
		}
	}
	return nil
}

// FormatDirTokensJSON выводит результаты директории одним JSON-массивом.
func FormatDirTokensJSON(w io.Writer, results []driver.TokenizeDirResult, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fileTokens(results, fs))
}

// FormatDirTokensMsgpack выводит результаты директории одним msgpack-массивом.
func FormatDirTokensMsgpack(w io.Writer, results []driver.TokenizeDirResult, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(fileTokens(results, fs))
}
