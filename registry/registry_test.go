package registry_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roomforge/grid"
	"github.com/katalvlaran/roomforge/registry"
)

type RegistrySuite struct {
	suite.Suite
	r *registry.Registry
}

func (s *RegistrySuite) SetupTest() {
	s.r = registry.New(grid.Origin)
}

func (s *RegistrySuite) TestOriginPreMarked() {
	require := require.New(s.T())
	require.True(s.r.Spawned(grid.Origin))
	for i := 0; i < 3; i++ {
		require.False(s.r.TryMarkSpawned(grid.Origin), "origin must never trigger")
	}
	require.Equal(1, s.r.Len())
}

func (s *RegistrySuite) TestOncePerRoom() {
	require := require.New(s.T())
	rooms := []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	for _, room := range rooms {
		require.False(s.r.Spawned(room))
		require.True(s.r.TryMarkSpawned(room), "first call for %v", room)
		require.False(s.r.TryMarkSpawned(room), "second call for %v", room)
		require.True(s.r.Spawned(room))
	}
	require.Equal(len(rooms)+1, s.r.Len())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

// TestConcurrentTryMarkSpawned races many callers per room; exactly one
// caller per room may win.
func TestConcurrentTryMarkSpawned(t *testing.T) {
	r := registry.New(grid.Origin)
	const rooms, callers = 20, 16

	var wins [rooms]atomic.Int32
	var wg sync.WaitGroup
	wg.Add(rooms * callers)
	for i := 0; i < rooms; i++ {
		for c := 0; c < callers; c++ {
			go func(i int) {
				defer wg.Done()
				if r.TryMarkSpawned(grid.Point{X: i + 1}) {
					wins[i].Add(1)
				}
			}(i)
		}
	}
	wg.Wait()

	for i := range wins {
		require.EqualValues(t, 1, wins[i].Load(), "room %d", i+1)
	}
	require.Equal(t, rooms+1, r.Len())
}
