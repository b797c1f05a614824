package workflow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Run("kind survives wrapping", func(t *testing.T) {
		err := errors.Wrap(NotFound("submission %s not found", "42"), "load")
		require.Equal(t, KindNotFound, KindOf(err))
		require.True(t, errors.Is(err, &Error{Kind: KindNotFound}))
		require.False(t, errors.Is(err, &Error{Kind: KindInvalidState}))
	})

	t.Run("validation lists fields", func(t *testing.T) {
		err := ValidationFailed("official use fields are missing", "registeredBy", "registryNo")
		require.Equal(t, "official use fields are missing: registeredBy, registryNo", err.Error())
		require.Equal(t, []string{"registeredBy", "registryNo"}, FieldsOf(err))
	})

	t.Run("store failure keeps the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := StoreFailure(cause, "save submission")
		require.Equal(t, KindStore, KindOf(err))
		require.True(t, errors.Is(err, cause))
		require.Nil(t, StoreFailure(nil, "noop"))
		require.Equal(t, ErrorKind(""), KindOf(cause))
	})
}
