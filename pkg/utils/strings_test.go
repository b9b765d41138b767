package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("", 5))
	assert.Equal(t, 12, ParseInt("12", 5))
	assert.Equal(t, 5, ParseInt("twelve", 5))
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/product/3", SafeRedirect("/product/3", "/cart"))
	assert.Equal(t, "/?q=shirt", SafeRedirect("/?q=shirt", "/cart"))
	assert.Equal(t, "/cart", SafeRedirect("", "/cart"))
	assert.Equal(t, "/cart", SafeRedirect("https://evil.example", "/cart"))
	assert.Equal(t, "/cart", SafeRedirect("//evil.example", "/cart"))
	assert.Equal(t, "/cart", SafeRedirect(`/\evil.example`, "/cart"))
}
