package pattern

import (
	"strings"
	"testing"
)

// spans упрощает сравнение результатов FindAll в тестах
func spans(matches []Match) [][2]int {
	out := make([][2]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, [2]int{m.Start, m.End})
	}
	return out
}

func equalSpans(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCharFindAll(t *testing.T) {
	hay := "Can you find a needle in a haystack"

	got := spans(Char('n').FindAll(hay))
	want := [][2]int{{2, 3}, {10, 11}, {15, 16}, {23, 24}}
	if !equalSpans(got, want) {
		t.Errorf("Expected matches %v, got %v", want, got)
	}

	if got := Char('z').FindAll(hay); got != nil {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestLiteralFindAll(t *testing.T) {
	tests := []struct {
		name     string
		pat      Literal
		haystack string
		want     [][2]int
	}{
		{"substring", "ab", "cabdab", [][2]int{{1, 3}, {4, 6}}},
		{"no match", "ab", "cd", nil},
		{"non-overlapping scan", "aa", "aaaa", [][2]int{{0, 2}, {2, 4}}},
		{"empty literal never matches", "", "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spans(tt.pat.FindAll(tt.haystack))
			if !equalSpans(got, tt.want) {
				t.Errorf("Expected matches %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSetFindAllIsMemberMajor(t *testing.T) {
	// матчи идут по членам набора, а не отсортированы по start
	got := spans(CharSet{'b', 'a'}.FindAll("ab"))
	want := [][2]int{{1, 2}, {0, 1}}
	if !equalSpans(got, want) {
		t.Errorf("Expected member-major order %v, got %v", want, got)
	}

	got = spans(LiteralSet{"you", "Can"}.FindAll("Can you"))
	want = [][2]int{{4, 7}, {0, 3}}
	if !equalSpans(got, want) {
		t.Errorf("Expected member-major order %v, got %v", want, got)
	}
}

func TestFindOne(t *testing.T) {
	hay := "Can you find a needle in a haystack"

	tests := []struct {
		name      string
		pat       Pattern
		wantStart int
	}{
		{"char", Char('n'), 2},
		{"literal", Literal("you"), 4},
		{"char set", CharSet{'a', 'e', 'i', 'o', 'u'}, 1},
		{"literal set", LiteralSet{"Can", "you"}, 0},
		{"func", Func(func(s string) bool { return strings.HasPrefix(s, "f") }), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := FindOne(tt.pat, hay)
			if !ok {
				t.Fatalf("Expected a match")
			}
			if m.Start != tt.wantStart {
				t.Errorf("Expected start %d, got %d", tt.wantStart, m.Start)
			}
		})
	}

	if _, ok := FindOne(Literal("ab"), "cd"); ok {
		t.Error("Expected no match")
	}
}

func TestFindPrefix(t *testing.T) {
	if _, ok := FindPrefix(Literal("ab"), "cdab"); ok {
		t.Error("Expected no prefix match")
	}

	m, ok := FindPrefix(Literal("ab"), "abcd")
	if !ok {
		t.Fatal("Expected a prefix match")
	}
	if m.Start != 0 || m.End != 2 {
		t.Errorf("Expected match [0, 2), got [%d, %d)", m.Start, m.End)
	}

	// член набора с матчем не в нуле не мешает члену с префиксом
	m, ok = FindPrefix(CharSet{'b', 'a'}, "ab")
	if !ok {
		t.Fatal("Expected a prefix match")
	}
	if m.Start != 0 || m.End != 1 {
		t.Errorf("Expected match [0, 1), got [%d, %d)", m.Start, m.End)
	}
}

func TestFindSuffix(t *testing.T) {
	if _, ok := FindSuffix(Literal("ab"), "abcd"); ok {
		t.Error("Expected no suffix match")
	}

	m, ok := FindSuffix(Literal("ab"), "cdab")
	if !ok {
		t.Fatal("Expected a suffix match")
	}
	if m.Start != 2 || m.End != 4 {
		t.Errorf("Expected match [2, 4), got [%d, %d)", m.Start, m.End)
	}
}

func TestRevFind(t *testing.T) {
	if _, ok := RevFind(Literal("ab"), "cd"); ok {
		t.Error("Expected no match")
	}

	m, ok := RevFind(Literal("ab"), "cabd")
	if !ok {
		t.Fatal("Expected a match")
	}
	if m.Start != 1 || m.End != 3 {
		t.Errorf("Expected match [1, 3), got [%d, %d)", m.Start, m.End)
	}

	// последний из нескольких
	m, ok = RevFind(Char('a'), "aaa")
	if !ok {
		t.Fatal("Expected a match")
	}
	if m.Start != 2 || m.End != 3 {
		t.Errorf("Expected match [2, 3), got [%d, %d)", m.Start, m.End)
	}
}

// TestDerivedConsistency: каждый префикс-матч есть в FindAll и начинается
// с нуля; каждый суффикс-матч заканчивается на len(haystack).
func TestDerivedConsistency(t *testing.T) {
	patterns := map[string]Pattern{
		"char":        Char('a'),
		"literal":     Literal("aa"),
		"char set":    CharSet{'a', 'b'},
		"literal set": LiteralSet{"ab", "ba"},
		"func":        Func(func(s string) bool { return !strings.ContainsRune(s, 'b') }),
		"regex":       MustRegex("a+b?"),
	}
	haystacks := []string{"", "a", "b", "ab", "ba", "aab", "abba", "aaabbbaaa"}

	for name, p := range patterns {
		for _, hay := range haystacks {
			all := spans(p.FindAll(hay))

			for _, m := range FindPrefixes(p, hay) {
				if m.Start != 0 {
					t.Errorf("%s %q: prefix match with start %d", name, hay, m.Start)
				}
				if !containsSpan(all, m) {
					t.Errorf("%s %q: prefix match [%d, %d) not in FindAll", name, hay, m.Start, m.End)
				}
			}
			for _, m := range FindSuffixes(p, hay) {
				if m.End != len(hay) {
					t.Errorf("%s %q: suffix match with end %d, want %d", name, hay, m.End, len(hay))
				}
				if !containsSpan(all, m) {
					t.Errorf("%s %q: suffix match [%d, %d) not in FindAll", name, hay, m.Start, m.End)
				}
			}
		}
	}
}

func containsSpan(all [][2]int, m Match) bool {
	for _, s := range all {
		if s == [2]int{m.Start, m.End} {
			return true
		}
	}
	return false
}

func TestRegexpFindAll(t *testing.T) {
	got := spans(MustRegex(`[0-9]+`).FindAll("a12b345c"))
	want := [][2]int{{1, 3}, {4, 7}}
	if !equalSpans(got, want) {
		t.Errorf("Expected matches %v, got %v", want, got)
	}

	// матчи нулевой длины отбрасываются
	if got := MustRegex(`x*`).FindAll("abc"); got != nil {
		t.Errorf("Expected no matches for zero-length-only regex, got %v", got)
	}
}
