package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Bold, Title, Small} {
		assert.NotNil(t, name.Get(), name)
	}

	_, small := Measure(Small.Get(), "x")
	_, title := Measure(Title.Get(), "x")
	assert.Greater(t, title, small)
	assert.Greater(t, Ascent(Title.Get()), 0)
}

func TestMeasureGrowsWithText(t *testing.T) {
	require.NoError(t, LoadFontWithSize(Regular, goregular.TTF, 14))
	short, _ := Measure(Regular.Get(), "Run")
	long, _ := Measure(Regular.Get(), "Run speed")
	assert.Greater(t, short, 0)
	assert.Greater(t, long, short)
}

func TestLoadRejectsBadData(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
	assert.Panics(t, func() { FontName("broken").Get() })
}
