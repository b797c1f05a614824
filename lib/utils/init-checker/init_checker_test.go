package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface {
	Name() string
}

type impl struct{}

func (i *impl) Name() string {
	return "impl"
}

func TestCheckInit(t *testing.T) {
	t.Run("all set", func(t *testing.T) {
		var p provider = &impl{}
		require.NotPanics(t, func() {
			CheckInit("store", p, "value", 0)
		})
	})
	t.Run("missing dependencies are listed", func(t *testing.T) {
		var unset provider
		var typedNil *impl
		var p provider = typedNil
		require.PanicsWithValue(t, "dependencies not initialized: mailer, storage", func() {
			CheckInit("mailer", unset, "storage", p, "ok", &impl{})
		})
	})
	t.Run("odd arguments", func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("mailer")
		})
	})
}
