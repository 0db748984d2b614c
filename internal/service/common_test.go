package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsNumericIdentifier(t *testing.T) {
	assert.True(t, IsNumericIdentifier("1"))
	assert.True(t, IsNumericIdentifier("42017"))
	assert.False(t, IsNumericIdentifier("pet-bottle-planter"))
	assert.False(t, IsNumericIdentifier("12a"))
	assert.False(t, IsNumericIdentifier(""))
}

func TestGenerateSlug(t *testing.T) {
	slug := generateSlug("Pet Bottle  Planter")
	assert.Regexp(t, regexp.MustCompile(`^pet-bottle-planter-\d+$`), slug)

	// 同一标题两次生成的slug带不同时间戳
	other := generateSlug("Pet Bottle  Planter")
	prefix := "pet-bottle-planter-"
	assert.Contains(t, slug, prefix)
	assert.Contains(t, other, prefix)
}

func TestTagSlug(t *testing.T) {
	assert.Equal(t, "wood-work", tagSlug("Wood Work"))
	assert.Equal(t, "eco", tagSlug("ECO"))
	assert.Equal(t, "环保", tagSlug("环保"))
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	ts := time.Date(2025, 1, 20, 18, 0, 0, 0, loc)
	assert.Equal(t, "2025-01-20T10:00:00Z", formatTime(ts))

	assert.Equal(t, "", formatTimePtr(nil))
	assert.Equal(t, "2025-01-20T10:00:00Z", formatTimePtr(&ts))
}

func TestToID(t *testing.T) {
	assert.Equal(t, "1", toID(1))
	assert.Equal(t, "4294967295", toID(4294967295))
}
