package catalog

import "github.com/latticesec/scanner/ir"

// seedBuiltins populates the default per-language entries used by the
// example end-to-end scenarios in §8 when the parsers classify calls while
// building the DFG. Rules do not fall back to these entries.
// These mirror the sets the teacher hand-maintains per language
// (graph/callgraph/core/stdlib_types.go, .../python/catalog.go).
func seedBuiltins(c *Catalog) {
	c.Extend(ir.FileTypePython, []Entry{
		{"input", ir.SymbolSource},
		{"os.environ.get", ir.SymbolSource},
		{"request.GET", ir.SymbolSource},
		{"request.POST", ir.SymbolSource},
		{"os.system", ir.SymbolSink},
		{"subprocess.call", ir.SymbolSink},
		{"subprocess.Popen", ir.SymbolSink},
		{"eval", ir.SymbolSink},
		{"exec", ir.SymbolSink},
		{"cursor.execute", ir.SymbolSink},
		{"html.escape", ir.SymbolSanitizer},
		{"shlex.quote", ir.SymbolSanitizer},
		{"markupsafe.escape", ir.SymbolSanitizer},
	})

	c.Extend(ir.FileTypeRust, []Entry{
		{"std::env::args", ir.SymbolSource},
		{"std::io::stdin", ir.SymbolSource},
		{"std::process::Command::new", ir.SymbolSink},
		{"html_escape::encode_text", ir.SymbolSanitizer},
	})

	c.Extend(ir.FileTypeJava, []Entry{
		{"request.getParameter", ir.SymbolSource},
		{"System.getenv", ir.SymbolSource},
		{"Runtime.getRuntime().exec", ir.SymbolSink},
		{"Statement.executeQuery", ir.SymbolSink},
		{"ESAPI.encoder().encodeForHTML", ir.SymbolSanitizer},
		{"StringEscapeUtils.escapeHtml4", ir.SymbolSanitizer},
	})

	c.Extend(ir.FileTypePHP, []Entry{
		{"$_GET", ir.SymbolSource},
		{"$_POST", ir.SymbolSource},
		{"$_REQUEST", ir.SymbolSource},
		{"system", ir.SymbolSink},
		{"shell_exec", ir.SymbolSink},
		{"mysqli_query", ir.SymbolSink},
		{"htmlspecialchars", ir.SymbolSanitizer},
		{"sanitize", ir.SymbolSanitizer},
		{"filter_var", ir.SymbolSanitizer},
	})
}
