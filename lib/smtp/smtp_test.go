package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeMessage(t *testing.T) {
	body, err := ComposeMessage("legal-hub@corp.lk", "gm@corp.lk", "Action required", "Submission LHD_20250101120000_001 is waiting for you")
	require.NoError(t, err)
	text := string(body)
	require.Contains(t, text, "From: legal-hub@corp.lk\r\n")
	require.Contains(t, text, "To: gm@corp.lk\r\n")
	require.Contains(t, text, "Subject: Legal Hub - Action required\r\n")
	require.Contains(t, text, "Content-Type: text/plain; charset=UTF-8")
	require.True(t, strings.Contains(text, "Submission LHD_20250101120000_001 is waiting for you"))
}

func TestSendWithoutRelay(t *testing.T) {
	require.NoError(t, Connect("", "", "", "", "legal-hub@corp.lk", false))
	require.False(t, Instance.IsConfigured())
	require.NoError(t, Instance.SendEMail("gm@corp.lk", "Action required", "hello"))
}
