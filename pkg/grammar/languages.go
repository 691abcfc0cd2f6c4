package grammar

import (
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	markdown "github.com/smacker/go-tree-sitter/markdown/tree-sitter-markdown"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
)

// Default returns a registry with every bundled grammar.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NewLanguage("rust", rust.GetLanguage(), nil, []string{".rs"}))
	r.Register(NewLanguage("tsx", tsx.GetLanguage(), nil, []string{".tsx"}))
	r.Register(NewLanguage("typescript", typescript.GetLanguage(), []string{"ts"}, []string{".ts", ".mts", ".cts"}))
	r.Register(NewLanguage("javascript", javascript.GetLanguage(), []string{"js", "jsx"}, []string{".js", ".jsx", ".mjs", ".cjs"}))
	r.Register(NewLanguage("python", python.GetLanguage(), []string{"py"}, []string{".py"}))
	r.Register(NewLanguage("ruby", ruby.GetLanguage(), []string{"rb"}, []string{".rb"}))
	r.Register(NewLanguage("markdown", markdown.GetLanguage(), []string{"md"}, []string{".md", ".markdown"}))
	r.Register(NewLanguage("go", golang.GetLanguage(), []string{"golang"}, []string{".go"}))
	r.Register(NewLanguage("bash", bash.GetLanguage(), []string{"sh"}, []string{".sh", ".bash"}))
	r.Register(NewLanguage("c", c.GetLanguage(), nil, []string{".c", ".h"}))
	r.Register(NewLanguage("cpp", cpp.GetLanguage(), []string{"c++"}, []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}))
	r.Register(NewLanguage("yaml", yaml.GetLanguage(), []string{"yml"}, []string{".yaml", ".yml"}))
	r.Register(NewLanguage("toml", toml.GetLanguage(), nil, []string{".toml"}))
	return r
}
