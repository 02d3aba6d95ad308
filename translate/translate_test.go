package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("alias unset", From("alias unset"))
	assert.Equal("line 3 'move r0 1' oops", From("line %d '%v' %v", 3, "move r0 1", "oops"))
}
