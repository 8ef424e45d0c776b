package asynctask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateErrorUnwrap(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")
	agg := &AggregateError{Message: "multi", Errors: []error{e1, e2}}

	assert.True(t, errors.Is(agg, e1))
	assert.True(t, errors.Is(agg, e2))
	assert.Contains(t, agg.Error(), "2 errors occurred")
}

func TestAggregateErrorSingle(t *testing.T) {
	e1 := errors.New("solo")
	agg := &AggregateError{Message: "multi", Errors: []error{e1}}
	assert.Equal(t, "multi: solo", agg.Error())
}

func TestPanicErrorUnwrapsErrorValue(t *testing.T) {
	cause := errors.New("cause")
	pe := &PanicError{Value: cause}
	assert.True(t, errors.Is(pe, cause))
}

func TestPanicErrorNonErrorValue(t *testing.T) {
	pe := &PanicError{Value: "not an error"}
	assert.Nil(t, pe.Unwrap())
	assert.NotEmpty(t, pe.Error())
}

func TestRecoverPanicReturnsNilForNilRecover(t *testing.T) {
	assert.Nil(t, recoverPanic(nil))
}

func TestRecoverPanicWrapsErrorAndNonError(t *testing.T) {
	cause := errors.New("boom")
	err := recoverPanic(cause)
	assert.True(t, errors.Is(err, cause))

	err = recoverPanic("splat")
	var pe *PanicError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "splat", pe.Value)
}
