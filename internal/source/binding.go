package source

// ImportBinding describes how a plugin is brought into scope in the generated
// config: `import <Identifier> from "<Module>";`.
type ImportBinding struct {
	Identifier string
	Module     string
}

// bindings lists the providers whose plugin import is known. Providers missing
// here still contribute rules, but no import or plugin entry is generated for
// them.
// TODO: add bindings for eslint-plugin-react, eslint-plugin-jsx-a11y and eslint-plugin-unicorn.
var bindings = map[Kind]ImportBinding{
	EslintTypeScript: {Identifier: "tseslint", Module: "typescript-eslint"},
}

// ImportBinding returns the import needed to register k as a plugin.
func (k Kind) ImportBinding() (ImportBinding, bool) {
	b, ok := bindings[k]
	return b, ok
}
