package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }

type french struct{}

func (french) Greet() string { return "bonjour" }

type recorder struct {
	name    string
	calls   *[]string
	initErr error
	destErr error
	seen    *Container
}

func (r *recorder) SetContainer(c *Container) {
	r.seen = c
	*r.calls = append(*r.calls, "aware:"+r.name)
}

func (r *recorder) Initialize() error {
	*r.calls = append(*r.calls, "init:"+r.name)
	return r.initErr
}

func (r *recorder) Destroy() error {
	*r.calls = append(*r.calls, "destroy:"+r.name)
	return r.destErr
}

func TestLookup_NotFoundIsAnOrdinaryResult(t *testing.T) {
	c := New()
	c.Register(42)

	got, ok := Lookup[greeter](c)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestLookup_NilContainerIsEmpty(t *testing.T) {
	_, ok := Lookup[greeter](nil)
	assert.False(t, ok)
	assert.Empty(t, All[greeter](nil))
}

func TestLookup_FirstRegistrationWins(t *testing.T) {
	c := New()
	c.Register(english{})
	c.Register(french{})

	got, ok := Lookup[greeter](c)
	require.True(t, ok)
	assert.Equal(t, "hello", got.Greet())
}

func TestLookup_PrimaryWins(t *testing.T) {
	c := New()
	c.Register(english{})
	c.Register(french{}, Primary())

	got, ok := Lookup[greeter](c)
	require.True(t, ok)
	assert.Equal(t, "bonjour", got.Greet())
}

func TestLookup_ConcreteType(t *testing.T) {
	c := New()
	c.Register(english{})
	c.Register(french{})

	got, ok := Lookup[french](c)
	require.True(t, ok)
	assert.Equal(t, french{}, got)
}

func TestRegister_IgnoresNil(t *testing.T) {
	c := New()
	c.Register(nil)
	assert.Empty(t, All[any](c))
}

func TestAll_KeepsRegistrationOrder(t *testing.T) {
	c := New()
	c.Register(english{})
	c.Register("not a greeter")
	c.Register(french{})

	all := All[greeter](c)
	require.Len(t, all, 2)
	assert.Equal(t, "hello", all[0].Greet())
	assert.Equal(t, "bonjour", all[1].Greet())
}

func TestStart_AwareBeforeInitialize(t *testing.T) {
	var calls []string
	c := New()
	a := &recorder{name: "a", calls: &calls}
	b := &recorder{name: "b", calls: &calls}
	c.Register(a)
	c.Register(b)

	require.NoError(t, c.Start())
	assert.Equal(t, []string{"aware:a", "aware:b", "init:a", "init:b"}, calls)
	assert.Same(t, c, a.seen)
}

func TestStart_StopsOnFirstFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	c := New()
	c.Register(&recorder{name: "a", calls: &calls, initErr: boom})
	c.Register(&recorder{name: "b", calls: &calls})

	err := c.Start()
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, calls, "init:b")
}

func TestStart_Twice(t *testing.T) {
	c := New()
	require.NoError(t, c.Start())
	assert.ErrorIs(t, c.Start(), ErrAlreadyStarted)
}

func TestClose_ReverseOrderAndJoinedErrors(t *testing.T) {
	var calls []string
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	c := New()
	c.Register(&recorder{name: "a", calls: &calls, destErr: errA})
	c.Register(&recorder{name: "b", calls: &calls, destErr: errB})
	require.NoError(t, c.Start())

	calls = nil
	err := c.Close()
	assert.Equal(t, []string{"destroy:b", "destroy:a"}, calls)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	calls = nil
	assert.NoError(t, c.Close())
	assert.Empty(t, calls)
}

func TestClose_NotStarted(t *testing.T) {
	var calls []string
	c := New()
	c.Register(&recorder{name: "a", calls: &calls})

	assert.NoError(t, c.Close())
	assert.Empty(t, calls)
}
