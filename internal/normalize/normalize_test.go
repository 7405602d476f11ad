package normalize

import "testing"

func TestText_StripsAccents(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Coração", "coracao"},
		{"Programação", "programacao"},
		{"Gestão de Projetos", "gestao de projetos"},
		{"élan", "elan"},
	}
	for _, c := range cases {
		if got := Text(c.in); got != c.want {
			t.Fatalf("Text(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestText_PreservesTechnicalTokens(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"C++", "c++"},
		{"C#", "c#"},
		{"Node.js", "node.js"},
		{"CI/CD", "ci/cd"},
		{"scikit-learn", "scikit-learn"},
	}
	for _, c := range cases {
		if got := Text(c.in); got != c.want {
			t.Fatalf("Text(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestText_StripsDisallowedPunctuation(t *testing.T) {
	if got := Text("python!!!"); got != "python" {
		t.Fatalf("got %q", got)
	}
	if got := Text("react, (hooks)"); got != "react hooks" {
		t.Fatalf("got %q", got)
	}
}

func TestText_CollapsesWhitespace(t *testing.T) {
	if got := Text("  machine    learning \t models "); got != "machine learning models" {
		t.Fatalf("got %q", got)
	}
}

func TestText_Empty(t *testing.T) {
	if got := Text(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Text("   "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{"Coração", "C++", "  Machine   Learning ", "node.js", "São Paulo, SP"}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Fatalf("Text not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
