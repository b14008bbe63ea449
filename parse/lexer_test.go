package parse

import "testing"

func TestTokenizeDeclarationValue(t *testing.T) {
	v := Tokenize(`url( "a.png" ) 10px 50% 1.5 #fff rect( foo, "bar" !important`)

	want := []TokenType{
		TokenURI, TokenWhitespace,
		TokenDimension, TokenWhitespace,
		TokenPercentage, TokenWhitespace,
		TokenNumber, TokenWhitespace,
		TokenHash, TokenWhitespace,
		TokenFunction, TokenWhitespace,
		TokenIdent, TokenChar, TokenWhitespace,
		TokenString, TokenWhitespace,
		TokenChar, TokenIdent,
	}
	if v.Len() != len(want) {
		t.Fatalf("token count: got %d, want %d", v.Len(), len(want))
	}
	for i, w := range want {
		if got := v.Peek(i).Type; got != w {
			t.Errorf("token %d: got %v, want %v (%s)", i, got, w, v.Peek(i))
		}
	}
}

func TestTokenizeCanonicalizesLower(t *testing.T) {
	v := Tokenize("InHeRiT")
	tok := v.Peek(0)
	if tok == nil || tok.Type != TokenIdent {
		t.Fatalf("expected ident, got %v", tok)
	}
	if tok.Lower.Data() != "inherit" {
		t.Errorf("lower twin: got %q", tok.Lower.Data())
	}
	if tok.Value.Data() != "InHeRiT" {
		t.Errorf("raw value: got %q", tok.Value.Data())
	}

	// Handle identity against a fresh intern of the folded form.
	v2 := Tokenize("inherit")
	if v2.Peek(0).Lower != tok.Lower {
		t.Errorf("case-folded handles must be identical")
	}
}

func TestTokenizeCommentsTransparent(t *testing.T) {
	v := Tokenize("red/* comment */blue")
	if v.Len() != 2 {
		t.Fatalf("token count: got %d", v.Len())
	}
	if v.Peek(0).Data != "red" || v.Peek(1).Data != "blue" {
		t.Errorf("idents: %q %q", v.Peek(0).Data, v.Peek(1).Data)
	}
}

func TestTokenizeEscapes(t *testing.T) {
	v := Tokenize(`\66 oo`)
	tok := v.Peek(0)
	if tok == nil || tok.Type != TokenIdent || tok.Data != "foo" {
		t.Fatalf("escape handling: got %v", tok)
	}
}

func TestConsumeWhitespace(t *testing.T) {
	v := Tokenize("a   b")
	ctx := 0
	v.Iterate(&ctx)
	v.ConsumeWhitespace(&ctx)
	if tok := v.Peek(ctx); tok == nil || tok.Data != "b" {
		t.Fatalf("expected ident b, got %v", tok)
	}
}
