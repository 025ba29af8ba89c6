package wasmpolicy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluator_NotReadyBeforeWarmup(t *testing.T) {
	ev := NewEvaluator("/nonexistent/policy.wasm", "entrypoint", DefaultLimits)
	assert.False(t, ev.Ready())

	_, ok := ev.Evaluate(map[string]string{"file_type": "python"})
	assert.False(t, ok, "Evaluate before a successful Warmup must report not-ok")
}

func TestEvaluator_IDsAreUniquePerInstance(t *testing.T) {
	a := NewEvaluator("/nonexistent/policy.wasm", "entrypoint", DefaultLimits)
	b := NewEvaluator("/nonexistent/policy.wasm", "entrypoint", DefaultLimits)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEvaluator_WarmupFailsOnMissingFile(t *testing.T) {
	ev := NewEvaluator("/nonexistent/policy.wasm", "entrypoint", DefaultLimits)
	err := ev.Warmup()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read WASM")
	assert.False(t, ev.Ready())
}

func TestLimits_FuelTimeoutScalesWithBudget(t *testing.T) {
	small := Limits{FuelUnits: 1_000}
	large := Limits{FuelUnits: 500_000_000}
	assert.Less(t, small.fuelTimeout(), large.fuelTimeout())
	assert.GreaterOrEqual(t, small.fuelTimeout(), 50*time.Millisecond)
}

func TestLimits_FuelTimeoutDefaultsWhenUnset(t *testing.T) {
	assert.Equal(t, 5*time.Second, Limits{}.fuelTimeout())
}

func TestLimits_MemoryBudgetBytes(t *testing.T) {
	assert.Equal(t, uint(0), Limits{}.memoryBudgetBytes())
	assert.Equal(t, uint(64*1024*1024), Limits{MemoryMB: 64}.memoryBudgetBytes())
}

func TestEvaluator_CheckMemoryPassesWhenNotReady(t *testing.T) {
	ev := NewEvaluator("/nonexistent/policy.wasm", "entrypoint", DefaultLimits)
	assert.True(t, ev.checkMemory(), "no instance yet: GetMemory errors and checkMemory must not panic")
}
