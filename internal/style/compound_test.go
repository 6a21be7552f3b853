package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// tracing returns a child setup that records its setups and disposals.
func tracing(name string, events *[]string) func(ctx Context[*panel, theme]) {
	runs := 0
	return func(ctx Context[*panel, theme]) {
		runs++
		id := fmt.Sprintf("%s#%d", name, runs)
		*events = append(*events, "setup "+id)
		_ = ctx.Append(reactive.NewDisposable(func() {
			*events = append(*events, "dispose "+id)
		}))
	}
}

func TestApplyStylesDisposesBeforeResubscribe(t *testing.T) {
	t.Parallel()

	var events []string
	p := newPanel(&events, nil)
	p.setUp = tracing("panel", &events)
	env := newPublisher().Convertibles()

	ApplyStyles(p, env)
	require.True(t, p.HasStyleSubscription())
	ApplyStyles(p, env)
	p.SetStyleSubscription(nil)

	assert.Equal(t, []string{
		"setup panel#1",
		"dispose panel#1",
		"setup panel#2",
		"dispose panel#2",
	}, events)
	assert.False(t, p.HasStyleSubscription())
}

func TestApplyStylesClearsSlotWhenEnvironmentCompletes(t *testing.T) {
	t.Parallel()

	var events []string
	p := newPanel(&events, nil)
	p.setUp = tracing("panel", &events)
	subject := reactive.NewSubject[environment.Convertible[theme]]()

	ApplyStyles(p, subject.Observable())
	subject.Next(environment.App[theme]{Theme: "light"})
	require.True(t, p.HasStyleSubscription())

	subject.Complete()
	assert.False(t, p.HasStyleSubscription())
	assert.Equal(t, []string{"setup panel#1", "dispose panel#1"}, events)
}

func TestApplyStylesWithCompletedEnvironmentInstallsNothing(t *testing.T) {
	t.Parallel()

	var events []string
	p := newPanel(&events, nil)
	p.setUp = tracing("panel", &events)

	ApplyStyles(p, reactive.Just[environment.Convertible[theme]](environment.App[theme]{Theme: "light"}))
	assert.False(t, p.HasStyleSubscription())
	assert.Equal(t, []string{"setup panel#1", "dispose panel#1"}, events)
}

func TestApplyStylesBindsChildren(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	label := newView(KindView)
	p := newPanel(nil, func(ctx Context[*panel, theme]) {
		require.NoError(t, Bind(Narrow(ctx, label), recordLabel).Apply(paletteStyle))
	})

	ApplyStyles(p, publisher.Convertibles())
	publisher.SetTheme("dark")
	p.SetStyleSubscription(nil)
	publisher.SetTheme("contrast")

	assert.Equal(t, []string{"light/light", "dark/light"}, label.applied)
}

func TestApplyStylesOnLoadWaitsForReady(t *testing.T) {
	t.Parallel()

	var events []string
	p := newLoadingPanel(&events, nil)
	p.setUp = tracing("panel", &events)
	env := newPublisher().Convertibles()

	ApplyStylesOnLoad(p, env)
	ApplyStylesOnLoad(p, env)
	assert.Empty(t, events)
	assert.True(t, p.HasStyleSubscription())

	p.load()
	p.loaded.Next(struct{}{})

	assert.Equal(t, []string{"setup panel#1"}, events)
	assert.True(t, p.HasStyleSubscription())
}

func TestApplyStylesOnLoadAppliesImmediatelyWhenReady(t *testing.T) {
	t.Parallel()

	var events []string
	p := newLoadingPanel(&events, nil)
	p.setUp = tracing("panel", &events)
	p.load()

	ApplyStylesOnLoad(p, newPublisher().Convertibles())

	assert.Equal(t, []string{"setup panel#1"}, events)
}

func TestApplyStylesOnLoadCancelledBeforeReady(t *testing.T) {
	t.Parallel()

	var events []string
	p := newLoadingPanel(&events, nil)
	p.setUp = tracing("panel", &events)

	ApplyStylesOnLoad(p, newPublisher().Convertibles())
	p.SetStyleSubscription(nil)
	p.load()

	assert.Empty(t, events)
}

func TestRelayReplaysToLateCells(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	l := &list{}
	ApplyStyles(l, publisher.Convertibles())

	latest, ok := l.relay.Latest()
	require.True(t, ok)
	assert.Equal(t, theme("light"), latest.ToStyleEnvironment(environment.DefaultTraits()).Theme)

	cell := newView(KindView)
	handle := SetUpStyles(cell, l.EnvironmentRelay().Observable(), func(ctx Context[*view, theme]) {
		require.NoError(t, Bind(ctx, recordLabel).Apply(paletteStyle))
	})
	defer handle.Dispose()
	assert.Equal(t, []string{"light/light"}, cell.applied)

	publisher.SetTheme("dark")
	assert.Equal(t, []string{"light/light", "dark/light"}, cell.applied)

	l.SetStyleSubscription(nil)
	publisher.SetTheme("contrast")
	assert.Equal(t, []string{"light/light", "dark/light"}, cell.applied)
}

func TestRelayZeroValueHasNoValue(t *testing.T) {
	t.Parallel()

	var r Relay[int]
	_, ok := r.Latest()
	assert.False(t, ok)

	var got []int
	d := r.Observable().Subscribe(func(v int) { got = append(got, v) })
	defer d.Dispose()
	r.Accept(1)
	r.Accept(2)

	late := []int{}
	r.Observable().Subscribe(func(v int) { late = append(late, v) }).Dispose()

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{2}, late)
}

func TestApplyChildCancelsWholeSubtree(t *testing.T) {
	t.Parallel()

	var events []string
	child := newPanel(&events, nil)
	child.setUp = tracing("child", &events)
	parent := newPanel(&events, nil)
	parentSetUp := tracing("parent", &events)
	parent.setUp = func(ctx Context[*panel, theme]) {
		parentSetUp(ctx)
		require.NoError(t, ApplyChild(Narrow(ctx, child)))
	}
	env := newPublisher().Convertibles()

	ApplyStyles(parent, env)
	require.True(t, child.HasStyleSubscription())

	ApplyStyles(parent, env)
	parent.SetStyleSubscription(nil)

	assert.False(t, child.HasStyleSubscription())
	assert.ElementsMatch(t, []string{
		"setup parent#1", "setup child#1",
		"dispose parent#1", "dispose child#1",
		"setup parent#2", "setup child#2",
		"dispose parent#2", "dispose child#2",
	}, events)
	assert.Equal(t, "setup parent#2", events[4])
}
