package pattern

import (
	"testing"
	"unicode"
)

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func TestFuncLongestMatchFirst(t *testing.T) {
	// на каждом старте берётся самая длинная подходящая подстрока
	got := spans(Func(allDigits).FindAll("ab12 345c"))
	want := [][2]int{{2, 4}, {5, 8}}
	if !equalSpans(got, want) {
		t.Errorf("Expected matches %v, got %v", want, got)
	}
}

func TestFuncResumesAfterMatchEnd(t *testing.T) {
	// после матча сканирование продолжается с его конца, не со start+1,
	// поэтому "aaaa" даёт два непересекающихся "aa", а не три
	isAA := Func(func(s string) bool { return s == "aa" })

	got := spans(isAA.FindAll("aaaa"))
	want := [][2]int{{0, 2}, {2, 4}}
	if !equalSpans(got, want) {
		t.Errorf("Expected matches %v, got %v", want, got)
	}
}

func TestFuncNoMatch(t *testing.T) {
	if got := Func(allDigits).FindAll("abc"); got != nil {
		t.Errorf("Expected no matches, got %v", got)
	}
	if got := Func(allDigits).FindAll(""); got != nil {
		t.Errorf("Expected no matches on empty haystack, got %v", got)
	}
}

func TestFuncCallCount(t *testing.T) {
	// worst case квадратичен: предикат, который никогда не матчится,
	// вызывается ровно n*(n+1)/2 раз
	calls := 0
	never := Func(func(string) bool {
		calls++
		return false
	})

	hay := "abcdefgh"
	never.FindAll(hay)

	n := len(hay)
	want := n * (n + 1) / 2
	if calls != want {
		t.Errorf("Expected %d predicate calls, got %d", want, calls)
	}
}
