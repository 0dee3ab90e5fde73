package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger"
)

func Test_Simulation_SameSeedYieldsSameRun(t *testing.T) {
	// arrange
	cfg := simulationConfig{Steps: 300, Seed: 42, Customers: 10, ErrorRate: 10}
	first, second := givenApp(t), givenApp(t)
	firstOut, secondOut := &bytes.Buffer{}, &bytes.Buffer{}

	// act
	firstErr := newSimulation(first, cfg).run(context.Background(), firstOut)
	secondErr := newSimulation(second, cfg).run(context.Background(), secondOut)

	// assert
	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, firstOut.String(), secondOut.String())
	assert.True(t, first.store.GetState().Cash.Equal(second.store.GetState().Cash))
}

func Test_Simulation_StateMatchesReplayedJournal(t *testing.T) {
	// arrange
	a := givenApp(t)
	out := &bytes.Buffer{}

	// act
	err := newSimulation(a, simulationConfig{Steps: 500, Seed: 7, Customers: 15, ErrorRate: 5}).run(context.Background(), out)

	// assert
	require.NoError(t, err)
	actions, err := a.store.Actions(context.Background(), ledger.BuildActionFilter().MatchingAnyAction())
	require.NoError(t, err)

	replayed := ledger.Replay(actions)
	live := a.store.GetState()
	assert.True(t, live.Cash.Equal(replayed.Cash))
	assert.Len(t, replayed.Contracts, len(live.Contracts))
	assert.Contains(t, out.String(), "Simulated 500 steps from 2024-01-01")
}

func Test_Simulation_StopsWhenContextIsCanceled(t *testing.T) {
	// arrange
	a := givenApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	err := newSimulation(a, simulationConfig{Steps: 10, Seed: 1, Customers: 3}).run(ctx, &bytes.Buffer{})

	// assert
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, a.store.GetState().Contracts)
}

func Test_SimulationConfig_ValidateCollectsAllProblems(t *testing.T) {
	// act
	err := simulationConfig{Steps: 0, Customers: -1, ErrorRate: 120}.validate()

	// assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be positive")
	assert.Contains(t, err.Error(), "customers must be positive")
	assert.Contains(t, err.Error(), "out of range")
}

func Test_SimulateCommand_PrintsSummary(t *testing.T) {
	// arrange
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCommand(strings.NewReader(""), out, errOut)
	cmd.SetArgs([]string{"simulate", "--steps", "50", "--seed", "3", "--log-level", "warn"})

	// act
	err := cmd.ExecuteContext(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Simulated 50 steps")
	assert.Contains(t, out.String(), "Journaled actions: ")
	assert.Contains(t, out.String(), string(scenarioPurchase))
}
