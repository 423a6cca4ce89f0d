package diagfmt

// PrettyOpts configures pretty-printing of errors and token dumps.
type PrettyOpts struct {
	Color   bool
	Context int // строк контекста вокруг ошибки
}
