package launcher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SierraSoftworks/bislib/pkg/matchers"
	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchAsyncDeliversOnce(t *testing.T) {
	mfs := newInstalledFS("ModA")
	runner := &fakeRunner{}
	l := New(Options{FS: mfs, Runner: runner})

	var (
		mu       sync.Mutex
		observed []types.LaunchOutcome
	)
	done := l.LaunchAsync(context.Background(), types.LaunchConfiguration{
		Game:       newGame(t, mfs),
		LaunchType: types.LaunchTypeRelease,
		Rules: []types.SelectionRule{
			mustRule(matchers.NewExactRule("ModA", false)),
		},
	}, func(outcome types.LaunchOutcome) {
		mu.Lock()
		observed = append(observed, outcome)
		mu.Unlock()
	})

	select {
	case outcome, ok := <-done:
		require.True(t, ok)
		assert.Equal(t, types.OutcomeSuccess, outcome.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("async launch did not complete")
	}

	// Channel is closed after the single delivery
	_, ok := <-done
	assert.False(t, ok)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, observed, 1)
	assert.Equal(t, types.OutcomeSuccess, observed[0].Kind)
}

func TestLaunchAsyncNilObserver(t *testing.T) {
	mfs := newInstalledFS()
	l := New(Options{FS: mfs, Runner: &fakeRunner{}})

	done := l.LaunchAsync(context.Background(), types.LaunchConfiguration{
		Game: newGame(t, mfs),
	}, nil)

	select {
	case outcome := <-done:
		assert.Equal(t, types.OutcomeSuccess, outcome.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("async launch did not complete")
	}
}

func TestLaunchAsyncConcurrentLaunchesAreIndependent(t *testing.T) {
	mfs := newInstalledFS("ModA")
	l := New(Options{FS: mfs, Runner: &fakeRunner{}})

	cfg := types.LaunchConfiguration{
		Game:       newGame(t, mfs),
		LaunchType: types.LaunchTypeRelease,
		Rules: []types.SelectionRule{
			mustRule(matchers.NewExactRule("ModA", false)),
		},
	}

	var chans []<-chan types.LaunchOutcome
	for i := 0; i < 4; i++ {
		chans = append(chans, l.LaunchAsync(context.Background(), cfg, nil))
	}

	for _, done := range chans {
		select {
		case outcome := <-done:
			assert.Equal(t, types.OutcomeSuccess, outcome.Kind)
			assert.Equal(t, []string{"ModA"}, outcome.Selected)
		case <-time.After(5 * time.Second):
			t.Fatal("async launch did not complete")
		}
	}
}
