package template

import "testing"

func TestRenderReplacesKnownTokens(t *testing.T) {
	got := Render("Day{problem}_input.{ext}", map[string]string{"problem": "03", "ext": "txt"})
	if got != "Day03_input.txt" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRenderLeavesUnknownTokensAndCodeBraces(t *testing.T) {
	cases := []struct {
		in   string
		vars map[string]string
		want string
	}{
		{"const f = \"{text_placeholder}\"", map[string]string{"text_placeholder": "in.txt"}, "const f = \"in.txt\""},
		{"if err != nil {\n}", nil, "if err != nil {\n}"},
		{"keep {unknown} token", map[string]string{"known": "x"}, "keep {unknown} token"},
		{"{a}{a}", map[string]string{"a": "b"}, "bb"},
	}
	for _, c := range cases {
		if got := Render(c.in, c.vars); got != c.want {
			t.Fatalf("Render(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderStrictRejectsUnknownToken(t *testing.T) {
	_, err := RenderStrict("{challenge}Day{problem}.{ext}", map[string]string{"problem": "01", "ext": "py"})
	if err == nil {
		t.Fatalf("expected error")
	}
	want := "strict templating: invalid placeholder {challenge}"
	if err.Error() != want {
		t.Fatalf("unexpected error\nwant: %s\n got: %s", want, err.Error())
	}
}

func TestRenderArgs(t *testing.T) {
	args, err := RenderArgs([]string{"gcc", "{file}", "-o", "{exe}"}, map[string]string{"file": "a.c", "exe": "a"})
	if err != nil {
		t.Fatalf("RenderArgs: %v", err)
	}
	want := []string{"gcc", "a.c", "-o", "a"}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d = %q, want %q", i, args[i], want[i])
		}
	}
	if _, err := RenderArgs([]string{"{nope}"}, nil); err == nil {
		t.Fatalf("expected error for unmapped placeholder")
	}
}
