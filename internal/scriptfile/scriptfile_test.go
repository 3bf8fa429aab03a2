package scriptfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const declScript = `
[[event]]
op = "start"
kind = "JS_VARIABLE_DECLARATOR"

[[event]]
op = "token"
kind = "LET_KW"
text = "\n\t let \t\t"
leading = [{ kind = "whitespace", len = 3 }]
trailing = [{ kind = "whitespace", len = 3 }]

[[event]]
op = "token"
kind = "IDENT"
text = "a "
trailing = [{ kind = "whitespace", len = 1 }]

[[event]]
op = "missing"

[[event]]
op = "token"
kind = "SEMICOLON"
text = ";"

[[event]]
op = "finish"
`

func TestLoadAndBuild(t *testing.T) {
	script, err := Load(writeScript(t, declScript))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(script.Events) != 6 {
		t.Fatalf("events = %d, want 6", len(script.Events))
	}

	root, err := script.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, want := root.Text(), "\n\t let \t\ta ;"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if got := root.NumSlots(); got != 4 {
		t.Fatalf("slots = %d, want 4 (missing slot kept)", got)
	}
	if el := root.ElementInSlot(2); el != nil {
		t.Fatalf("slot 2 = %v, want empty", el)
	}
}

func TestLoadRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			"unknown op",
			"[[event]]\nop = \"emit\"\nkind = \"IDENT\"\n",
			"unknown op",
		},
		{
			"unknown kind",
			"[[event]]\nop = \"start\"\nkind = \"NOT_A_KIND\"\n",
			"unknown kind",
		},
		{
			"token outside node",
			"[[event]]\nop = \"token\"\nkind = \"IDENT\"\ntext = \"a\"\n",
			"outside of a node",
		},
		{
			"unbalanced",
			"[[event]]\nop = \"start\"\nkind = \"JS_ROOT\"\n",
			"unfinished",
		},
		{
			"finish without start",
			"[[event]]\nop = \"finish\"\n",
			"without matching start",
		},
		{
			"trivia too long",
			"[[event]]\nop = \"start\"\nkind = \"JS_ROOT\"\n" +
				"[[event]]\nop = \"token\"\nkind = \"IDENT\"\ntext = \"a\"\n" +
				"leading = [{ kind = \"whitespace\", len = 5 }]\n" +
				"[[event]]\nop = \"finish\"\n",
			"trivia covers",
		},
		{
			"trailing garbage after root",
			"[[event]]\nop = \"start\"\nkind = \"JS_ROOT\"\n" +
				"[[event]]\nop = \"finish\"\n" +
				"[[event]]\nop = \"start\"\nkind = \"JS_ROOT\"\n" +
				"[[event]]\nop = \"finish\"\n",
			"after the root",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeScript(t, tt.content))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.errPart)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}
