package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNumbering(t *testing.T) {
	t.Run("submission number", func(t *testing.T) {
		at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		require.Equal(t, "LHD_20250101120000_001", NewSubmissionNo(at, 1))
		require.Equal(t, "LHD_20250101120000_042", NewSubmissionNo(at, 42))
		require.Equal(t, "LHD_20250101120000_999", NewSubmissionNo(at, 999))
	})

	t.Run("resubmission suffix", func(t *testing.T) {
		first := ResubmissionNo("LHD_20250101120000_001")
		require.Equal(t, "LHD_20250101120000_001_R1", first)
		require.Equal(t, "LHD_20250101120000_001_R2", ResubmissionNo(first))
		require.Equal(t, "LHD_20250101120000_001_R10", ResubmissionNo("LHD_20250101120000_001_R9"))
	})

	t.Run("sequence wraps after 999", func(t *testing.T) {
		require.Equal(t, 1, SequenceFromCounter(1))
		require.Equal(t, 999, SequenceFromCounter(999))
		require.Equal(t, 1, SequenceFromCounter(1000))
		require.Equal(t, 1, SequenceFromCounter(0))
	})
}
