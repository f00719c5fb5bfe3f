package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMineAndExtract(t *testing.T) {
	chain := New()
	for _, r := range "World" {
		chain.Mine(r)
	}

	got, err := chain.VerifyAndExtract()
	require.NoError(t, err)
	assert.Equal(t, "World", got)
	assert.Equal(t, 5, chain.Len())
}

func TestEmptyChain(t *testing.T) {
	got, err := New().VerifyAndExtract()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCorruptionDetected(t *testing.T) {
	chain := New()
	for _, r := range "World" {
		chain.Mine(r)
	}

	// Tamper with a mined block: its successor's PrevHash no longer matches
	chain.blocks[2].Data = 'X'

	_, err := chain.VerifyAndExtract()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain corrupted at block 3")
}

func TestTamperedPrevHashDetected(t *testing.T) {
	chain := New()
	chain.Mine('W').Mine('o')

	chain.blocks[1].PrevHash = 0

	_, err := chain.VerifyAndExtract()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain corrupted at block 1")
}

func TestRunIDSeedsGenesis(t *testing.T) {
	a := NewWithRunID(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	b := NewWithRunID(uuid.MustParse("00000000-0000-0000-0000-000000000002"))
	a.Mine('W')
	b.Mine('W')

	// Same data, different run: the genesis link differs
	assert.NotEqual(t, a.blocks[0].PrevHash, b.blocks[0].PrevHash)

	// Both chains still verify and extract the same characters
	gotA, err := a.VerifyAndExtract()
	require.NoError(t, err)
	gotB, err := b.VerifyAndExtract()
	require.NoError(t, err)
	assert.Equal(t, gotA, gotB)
}

func TestBlockHashDeterministic(t *testing.T) {
	b := Block{Index: 1, Data: 'o', PrevHash: 42}
	assert.Equal(t, b.Hash(), b.Hash())
	assert.NotEqual(t, b.Hash(), Block{Index: 1, Data: 'x', PrevHash: 42}.Hash())
}
