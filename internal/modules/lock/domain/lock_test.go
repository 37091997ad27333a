package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockConfigSetAll(t *testing.T) {
	cfg := NewLockConfig(42)

	require.True(t, cfg.Set(CategoryAll, true))
	for _, cat := range Lockable {
		assert.True(t, cfg.IsLocked(cat), cat)
	}
	assert.False(t, cfg.IsLocked(CategoryAll))

	require.True(t, cfg.Set(CategoryAll, false))
	assert.Empty(t, cfg.Categories)
}

func TestLockConfigSetIsIdempotent(t *testing.T) {
	cfg := NewLockConfig(1)

	assert.True(t, cfg.Set(CategoryLinks, true))
	assert.False(t, cfg.Set(CategoryLinks, true))
	assert.Equal(t, []Category{CategoryLinks}, cfg.Categories)

	assert.True(t, cfg.Set(CategoryLinks, false))
	assert.False(t, cfg.Set(CategoryLinks, false))
	assert.Empty(t, cfg.Categories)
}

func TestLockConfigKeepsCanonicalOrder(t *testing.T) {
	cfg := NewLockConfig(1)
	cfg.Set(CategoryMedia, true)
	cfg.Set(CategoryLinks, true)
	cfg.Set(CategoryBots, true)

	assert.Equal(t, []Category{CategoryLinks, CategoryBots, CategoryMedia}, cfg.Categories)
}

func TestLockConfigCloneIsIndependent(t *testing.T) {
	cfg := NewLockConfig(1)
	cfg.Set(CategoryLinks, true)

	clone := cfg.Clone()
	clone.Set(CategoryMedia, true)

	assert.False(t, cfg.IsLocked(CategoryMedia))
	assert.True(t, clone.IsLocked(CategoryMedia))
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		kind ContentKind
		want Category
		ok   bool
	}{
		{ContentKindLink, CategoryLinks, true},
		{ContentKindForwarded, CategoryForward, true},
		{ContentKindBotMentionOrAdded, CategoryBots, true},
		{ContentKindPhoto, CategoryMedia, true},
		{ContentKindVideoNote, CategoryMedia, true},
		{ContentKindSticker, CategoryMedia, true},
		{ContentKindPlainText, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := CategoryFor(tt.kind)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategoryIgnoresCase(t *testing.T) {
	cat, err := ParseCategory("LiNkS")
	require.NoError(t, err)
	assert.Equal(t, CategoryLinks, cat)

	_, err = ParseCategory("stickers")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
