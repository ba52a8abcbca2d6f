// Package source classifies the external rule providers that a Biome rule can
// declare itself equivalent to.
package source

import (
	"fmt"
	"sort"
)

// Kind identifies one family of external lint rules (ESLint core, a specific
// ESLint plugin, or another linter altogether).
// The constant order is the total order used when emitting plugins.
type Kind int

const (
	Clippy Kind = iota
	DenoLint
	Eslint
	EslintBarrelFiles
	EslintGraphql
	EslintImport
	EslintImportAccess
	EslintJest
	EslintJsDoc
	EslintJsxA11y
	EslintMysticatea
	EslintN
	EslintNext
	EslintNoSecrets
	EslintPackageJson
	EslintPackageJsonDependencies
	EslintPerfectionist
	EslintQwik
	EslintReact
	EslintReactHooks
	EslintReactPreferFunctionComponent
	EslintReactRefresh
	EslintReactX
	EslintReactXyz
	EslintRegexp
	EslintSolid
	EslintSonarJs
	EslintStylistic
	EslintTurbo
	EslintTypeScript
	EslintUnicorn
	EslintUnusedImports
	EslintVitest
	EslintVueJs
	GraphqlSchemaLinter
	Stylelint

	kindCount
)

// kindInfo holds the per-kind facts. Indexed by Kind.
type kindInfo struct {
	tag       string
	namespace string // empty when the provider is not registered as a plugin
}

var kinds = [kindCount]kindInfo{
	Clippy:                             {tag: "clippy"},
	DenoLint:                           {tag: "denoLint"},
	Eslint:                             {tag: "eslint"},
	EslintBarrelFiles:                  {tag: "eslintBarrelFiles", namespace: "barrel-files"},
	EslintGraphql:                      {tag: "eslintGraphql", namespace: "@graphql-eslint"},
	EslintImport:                       {tag: "eslintImport", namespace: "import"},
	EslintImportAccess:                 {tag: "eslintImportAccess", namespace: "import-access"},
	EslintJest:                         {tag: "eslintJest", namespace: "jest"},
	EslintJsDoc:                        {tag: "eslintJsDoc", namespace: "jsdoc"},
	EslintJsxA11y:                      {tag: "eslintJsxA11y", namespace: "jsx-a11y"},
	EslintMysticatea:                   {tag: "eslintMysticatea", namespace: "@mysticatea"},
	EslintN:                            {tag: "eslintN", namespace: "n"},
	EslintNext:                         {tag: "eslintNext", namespace: "@next/next"},
	EslintNoSecrets:                    {tag: "eslintNoSecrets", namespace: "no-secrets"},
	EslintPackageJson:                  {tag: "eslintPackageJson", namespace: "package-json"},
	EslintPackageJsonDependencies:      {tag: "eslintPackageJsonDependencies", namespace: "package-json-dependencies"},
	EslintPerfectionist:                {tag: "eslintPerfectionist", namespace: "perfectionist"},
	EslintQwik:                         {tag: "eslintQwik", namespace: "qwik"},
	EslintReact:                        {tag: "eslintReact", namespace: "react"},
	EslintReactHooks:                   {tag: "eslintReactHooks", namespace: "react-hooks"},
	EslintReactPreferFunctionComponent: {tag: "eslintReactPreferFunctionComponent", namespace: "react-prefer-function-component"},
	EslintReactRefresh:                 {tag: "eslintReactRefresh", namespace: "react-refresh"},
	EslintReactX:                       {tag: "eslintReactX", namespace: "react-x"},
	EslintReactXyz:                     {tag: "eslintReactXyz", namespace: "@eslint-react"},
	EslintRegexp:                       {tag: "eslintRegexp", namespace: "regexp"},
	EslintSolid:                        {tag: "eslintSolid", namespace: "solid"},
	EslintSonarJs:                      {tag: "eslintSonarJs", namespace: "sonarjs"},
	EslintStylistic:                    {tag: "eslintStylistic", namespace: "@stylistic"},
	EslintTurbo:                        {tag: "eslintTurbo", namespace: "turbo"},
	EslintTypeScript:                   {tag: "eslintTypeScript", namespace: "@typescript-eslint"},
	EslintUnicorn:                      {tag: "eslintUnicorn", namespace: "unicorn"},
	EslintUnusedImports:                {tag: "eslintUnusedImports", namespace: "unused-imports"},
	EslintVitest:                       {tag: "eslintVitest", namespace: "vitest"},
	EslintVueJs:                        {tag: "eslintVueJs", namespace: "vue"},
	GraphqlSchemaLinter:                {tag: "graphqlSchemaLinter"},
	Stylelint:                          {tag: "stylelint"},
}

var byTag = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		m[kinds[k].tag] = k
	}
	return m
}()

// UnknownSourceError is returned when a registry references a provider tag
// this package does not know. It signals that the registry and this tool are
// out of sync, not a user mistake.
type UnknownSourceError struct {
	Tag string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown rule source %q: registry references a provider this tool does not support", e.Tag)
}

// Classify maps a registry provider tag onto its Kind.
func Classify(tag string) (Kind, error) {
	k, ok := byTag[tag]
	if !ok {
		return 0, &UnknownSourceError{Tag: tag}
	}
	return k, nil
}

// Kinds returns every known kind in order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is one of the declared constants.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the registry tag of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].tag
}

// Namespace returns the plugin namespace under which the provider's rules are
// registered, e.g. "@typescript-eslint". Core ESLint and non-ESLint linters
// have none.
func (k Kind) Namespace() (string, bool) {
	if !k.Valid() || kinds[k].namespace == "" {
		return "", false
	}
	return kinds[k].namespace, true
}

// NamespacedRuleName returns the rule name as ESLint expects it in the rules
// map: "<namespace>/<rule>" for plugins, the bare name otherwise.
func (k Kind) NamespacedRuleName(rule string) string {
	if ns, ok := k.Namespace(); ok {
		return ns + "/" + rule
	}
	return rule
}

// SortKinds sorts kinds in place by their declared order.
func SortKinds(ks []Kind) {
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
}
