package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestParseDirectoryFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		path := filepath.Join(t.TempDir(), "directory.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("valid", func(t *testing.T) {
		path := write(t, "name;email;role;department\nLeo Dias; Leo@Corp.lk ;Legal Officer;Legal\nKumara;court@corp.lk;COURT_OFFICER\n")
		list, err := parseDirectoryFile(path)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "leo@corp.lk", list[0].Email)
		require.Equal(t, models.RoleLegalOfficer, list[0].Role)
		require.Equal(t, "Legal", list[0].Department)
		require.True(t, list[0].IsActive)
		require.Equal(t, models.RoleCourtOfficer, list[1].Role)
		require.Empty(t, list[1].Department)
	})

	t.Run("unknown role", func(t *testing.T) {
		path := write(t, "name;email;role;department\nMallory;m@corp.lk;Janitor;Ops\n")
		_, err := parseDirectoryFile(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "line 2")
	})
}
