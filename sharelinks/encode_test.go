package sharelinks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeTitle_SpacesAndTrailingNewline(t *testing.T) {
	require.Equal(t, "Hello%20World%0A", EncodeTitle("Hello World"))
}

func TestEncodeTitle_ReservedCharacters(t *testing.T) {
	require.Equal(t, "Q%26A%3A%20Go%20%3D%20fun%3F%0A", EncodeTitle("Q&A: Go = fun?"))
}

func TestEncodeTitle_EmptyTitleStillValid(t *testing.T) {
	require.Equal(t, "%0A", EncodeTitle(""))
}
