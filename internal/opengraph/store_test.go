package opengraph

import (
	"context"
	"errors"
	"testing"

	"github.com/quantmind-br/sharesns/internal/domain"
	"github.com/quantmind-br/sharesns/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func captured(t *testing.T, scanned map[string]string) *Store {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMetadataSource(ctrl)
	source.EXPECT().Scan(gomock.Any()).Return(scanned, nil).Times(1)
	return Capture(context.Background(), source, DefaultFields(), nil)
}

func TestCapture(t *testing.T) {
	store := captured(t, map[string]string{
		domain.OGTitle:       "Hello",
		domain.OGDescription: "World",
		domain.OGURL:         "https://x.test",
		domain.KeyPopupWidth: "800",
	})

	og := store.Original()
	assert.Equal(t, "Hello", og.Get(domain.OGTitle))
	assert.Equal(t, "800", og.Get(domain.KeyPopupWidth), "scanned values win over defaults")
	assert.Equal(t, "380", og.Get(domain.KeyPopupHeight))
	assert.Equal(t, "shareSNS", og.Get(domain.KeyPopupName))
	assert.Equal(t, "606", og.Get(domain.KeyKakaoImageWidth))
	assert.Equal(t, "Hello", og.Get(domain.KeyKakaoTalkLabel))
	assert.NotEmpty(t, og.Get(domain.KeyCopyURLPrompt))
}

func TestCapture_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockMetadataSource(ctrl)
	source.EXPECT().Scan(gomock.Any()).Return(nil, errors.New("boom"))

	store := Capture(context.Background(), source, DefaultFields(), nil)
	og := store.Original()
	assert.Equal(t, "660", og.Get(domain.KeyPopupWidth))
	assert.Empty(t, og.Get(domain.OGURL))
}

func TestCapture_NilSource(t *testing.T) {
	store := Capture(context.Background(), nil, Defaults{}, nil)
	assert.Empty(t, store.Original())
}

func TestStore_OriginalIsACopy(t *testing.T) {
	store := NewStore(map[string]string{domain.OGTitle: "A"}, nil)

	og := store.Original()
	og[domain.OGTitle] = "mutated"

	assert.Equal(t, "A", store.Original().Get(domain.OGTitle))
}

func TestStore_Merge(t *testing.T) {
	base := map[string]string{
		domain.OGTitle: "A",
		domain.OGURL:   "https://x.test",
	}

	tests := []struct {
		name      string
		overrides any
		want      domain.OpenGraph
	}{
		{"nil", nil, domain.OpenGraph(base)},
		{"empty map", map[string]string{}, domain.OpenGraph(base)},
		{"string map", map[string]string{domain.OGTitle: "B"}, domain.OpenGraph{domain.OGTitle: "B", domain.OGURL: "https://x.test"}},
		{"open graph", domain.OpenGraph{"image": "i.png"}, domain.OpenGraph{domain.OGTitle: "A", domain.OGURL: "https://x.test", "image": "i.png"}},
		{"any map", map[string]any{"popup_width": 800, "flag": true, "skip": nil}, domain.OpenGraph{domain.OGTitle: "A", domain.OGURL: "https://x.test", "popup_width": "800", "flag": "true"}},
		{"json string", `{"title":"C","popup_height":500}`, domain.OpenGraph{domain.OGTitle: "C", domain.OGURL: "https://x.test", "popup_height": "500"}},
		{"json bytes", []byte(`{"title":"D"}`), domain.OpenGraph{domain.OGTitle: "D", domain.OGURL: "https://x.test"}},
		{"malformed json", `{"title":`, domain.OpenGraph(base)},
		{"json array", `["title"]`, domain.OpenGraph(base)},
		{"json with trailing data", `{"title":"X"} garbage`, domain.OpenGraph(base)},
		{"two json objects", `{"title":"X"}{"title":"Y"}`, domain.OpenGraph(base)},
		{"json with trailing space", "{\"title\":\"E\"}\n\t ", domain.OpenGraph{domain.OGTitle: "E", domain.OGURL: "https://x.test"}},
		{"blank string", "  ", domain.OpenGraph(base)},
		{"unsupported type", 42, domain.OpenGraph(base)},
		{"slice", []string{"title"}, domain.OpenGraph(base)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(base, nil)
			got := store.Merge(tt.overrides)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, domain.OpenGraph(base), store.Original(), "original is never mutated")
		})
	}
}

func TestStore_MergeIdempotent(t *testing.T) {
	store := NewStore(map[string]string{domain.OGTitle: "A", domain.OGDescription: "x"}, nil)
	override := map[string]string{domain.OGTitle: "B"}

	first := store.Merge(override)
	second := store.Merge(override)
	assert.Equal(t, first, second)

	first[domain.OGTitle] = "changed"
	assert.Equal(t, "B", store.Merge(override).Get(domain.OGTitle), "merges never alias each other")
	assert.Equal(t, store.Original(), store.Merge(map[string]string{}))
}

func TestParseOverrides_Errors(t *testing.T) {
	for _, in := range []any{`nope`, `"string"`, `1`, 3.5, struct{}{}, `{"title":"X"} garbage`, []byte(`{} []`)} {
		_, err := ParseOverrides(in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidOverride))
	}
}

func TestParseOverrides_NestedValues(t *testing.T) {
	got, err := ParseOverrides(`{"tags":["a","b"],"n":1.50}`)
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, got["tags"])
	assert.Equal(t, "1.50", got["n"])
}
