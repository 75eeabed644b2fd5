package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, Success, ConvertErr(nil))
	})

	t.Run("wrapped errno keeps its code", func(t *testing.T) {
		err := errors.WithMessage(NotFoundErr.WithMessage("Video not found"), "dal.GetVideo failed")
		got := ConvertErr(err)
		assert.Equal(t, int64(NotFoundCode), got.ErrCode)
		assert.Equal(t, "Video not found", got.ErrMsg)
	})

	t.Run("foreign error becomes service error", func(t *testing.T) {
		got := ConvertErr(errors.New("connection refused"))
		assert.Equal(t, int64(ServiceErrCode), got.ErrCode)
		assert.Equal(t, "connection refused", got.ErrMsg)
	})
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Wrap(ConflictErr.WithMessage("Video already exists in playlist"), "add")
	assert.ErrorIs(t, err, ConflictErr)
	assert.NotErrorIs(t, err, NotFoundErr)
}
