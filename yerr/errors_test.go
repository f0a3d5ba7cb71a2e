package yerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err  *Error
		want string
	}{
		{
			err:  NotFoundf(WithPath("/a/b"), WithMessage("no such node")),
			want: "not-found at /a/b: no such node",
		},
		{
			err:  Collisionf(WithMessage("typedef T redefined")),
			want: "collision: typedef T redefined",
		},
		{
			err:  Cyclef(WithPath("module A")),
			want: "cycle at module A",
		},
		{
			err:  Systemf(WithCause(errors.New("open failed"))),
			want: "system (open failed)",
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err.Kind), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Systemf(WithCause(cause))
	// WithCause stores the cause beneath a stack-trace wrapper, so the
	// original error is one Unwrap below that wrapper.
	assert.Equal(t, cause, errors.Unwrap(errors.Unwrap(err)))
}

func TestErrorIs(t *testing.T) {
	err := NotFoundf(WithPath("/x"), WithMessage("nope"))
	assert.True(t, errors.Is(err, NotFoundf()))
	assert.False(t, errors.Is(err, Collisionf()))
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("wrapping: %w", Deniedf(WithMessage("nope")))
	k, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, Denied, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}
