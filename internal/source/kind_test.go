package source

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_EveryKindHasUniqueTag(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		tag := k.String()
		require.NotEmpty(t, tag, "kind %d has no tag", int(k))

		prev, dup := seen[tag]
		assert.False(t, dup, "tag %q used by %d and %d", tag, int(prev), int(k))
		seen[tag] = k
	}
	assert.Len(t, seen, int(kindCount))
}

func TestClassify_RoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := Classify(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestClassify_Unknown(t *testing.T) {
	_, err := Classify("eslintMadeUp")
	require.Error(t, err)

	var unknown *UnknownSourceError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "eslintMadeUp", unknown.Tag)
	assert.Contains(t, err.Error(), "eslintMadeUp")
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		ok   bool
	}{
		{Eslint, "", false},
		{Clippy, "", false},
		{DenoLint, "", false},
		{Stylelint, "", false},
		{GraphqlSchemaLinter, "", false},
		{EslintTypeScript, "@typescript-eslint", true},
		{EslintJsxA11y, "jsx-a11y", true},
		{EslintNext, "@next/next", true},
		{EslintReactXyz, "@eslint-react", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ns, ok := tt.kind.Namespace()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ns)
		})
	}
}

func TestNamespacedRuleName(t *testing.T) {
	assert.Equal(t, "no-var", Eslint.NamespacedRuleName("no-var"))
	assert.Equal(t, "@typescript-eslint/no-explicit-any", EslintTypeScript.NamespacedRuleName("no-explicit-any"))
	assert.Equal(t, "unicorn/no-for-loop", EslintUnicorn.NamespacedRuleName("no-for-loop"))
}

func TestImportBinding_OnlyTypeScript(t *testing.T) {
	for _, k := range Kinds() {
		b, ok := k.ImportBinding()
		if k == EslintTypeScript {
			require.True(t, ok)
			assert.Equal(t, "tseslint", b.Identifier)
			assert.Equal(t, "typescript-eslint", b.Module)
			continue
		}
		assert.False(t, ok, "unexpected binding for %s", k)
	}
}

func TestImportBinding_ImpliesNamespace(t *testing.T) {
	for _, k := range Kinds() {
		if _, ok := k.ImportBinding(); ok {
			_, hasNS := k.Namespace()
			assert.True(t, hasNS, "%s has an import binding but no namespace", k)
		}
	}
}

func TestSortKinds(t *testing.T) {
	ks := []Kind{Stylelint, EslintTypeScript, Clippy, Eslint}
	SortKinds(ks)
	assert.Equal(t, []Kind{Clippy, Eslint, EslintTypeScript, Stylelint}, ks)
}

func TestKind_InvalidString(t *testing.T) {
	assert.Equal(t, "Kind(99)", Kind(99).String())
	_, ok := Kind(-1).Namespace()
	assert.False(t, ok)
}
