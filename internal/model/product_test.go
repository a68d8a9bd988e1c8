package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/commerce-mock/internal/model"
)

func TestProductTags(t *testing.T) {
	t.Run("Should split and trim comma-separated tags", func(t *testing.T) {
		p := model.Product{Tags: "electronics, home ,office"}
		assert.Equal(t, []string{"electronics", "home", "office"}, p.TagList())
	})

	t.Run("Should yield no tags for an empty field", func(t *testing.T) {
		p := model.Product{}
		assert.Nil(t, p.TagList())
		assert.False(t, p.HasTag([]string{"electronics"}))
	})

	t.Run("Should match when any tag is requested", func(t *testing.T) {
		p := model.Product{Tags: "electronics,home"}
		assert.True(t, p.HasTag([]string{"home"}))
		assert.False(t, p.HasTag([]string{"garden"}))
	})

	t.Run("Should drop empty segments", func(t *testing.T) {
		p := model.Product{Tags: "electronics,, ,home"}
		assert.Equal(t, []string{"electronics", "home"}, p.TagList())
	})
}
