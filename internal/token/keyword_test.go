package token

import "testing"

func TestLookupKeywordCaseInsensitive(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
		ok    bool
	}{
		{"attribute", KwAttribute, true},
		{"ATTRIBUTE", KwAttribute, true},
		{"Entity", KwEntity, true},
		{"impure", KwImpure, true},
		{"Return", KwReturn, true},
		{"xnor", KwXnor, true},
		{"foo", Invalid, false},
		{"attrib", Invalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			k, ok := LookupKeyword(tt.ident)
			if ok != tt.ok {
				t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			}
			if ok && k != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, k, tt.want)
			}
		})
	}
}

func TestKeywordTextRoundTrip(t *testing.T) {
	for text, kind := range keywords {
		back, ok := KeywordText(kind)
		if !ok {
			t.Fatalf("KeywordText(%v) missing", kind)
		}
		if back != text {
			t.Errorf("KeywordText(%v) = %q, want %q", kind, back, text)
		}
	}
}
