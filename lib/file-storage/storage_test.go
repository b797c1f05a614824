package filestorage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	t.Run("keeps readable names", func(t *testing.T) {
		require.Equal(t, "submissions/s1/f1-board_resolution.pdf", ObjectKey("s1", "f1", "board resolution.pdf"))
	})
	t.Run("drops client paths", func(t *testing.T) {
		require.Equal(t, "submissions/s1/f1-form20.pdf", ObjectKey("s1", "f1", `C:\Users\ina\form20.pdf`))
		require.Equal(t, "submissions/s1/f1-passwd", ObjectKey("s1", "f1", "../../etc/passwd"))
	})
	t.Run("empty name", func(t *testing.T) {
		require.Equal(t, "submissions/s1/f1-file", ObjectKey("s1", "f1", ""))
	})
}

func TestFileURL(t *testing.T) {
	require.Equal(t, "https://files.corp.lk/legal-hub/submissions/s1/f1-a.pdf",
		FileURL("https://files.corp.lk/legal-hub/", "submissions/s1/f1-a.pdf"))
}
