// Package ledger stores characters in a hash-chained sequence of
// blocks. Every block records the hash of its predecessor, so a
// tampered block is detected when the chain is extracted.
package ledger

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
)

// Block stores a single mined character
type Block struct {
	Index    int
	Data     rune
	PrevHash uint64
}

// Hash computes the FNV-1a hash of the block contents
func (b Block) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d|%c|%016x", b.Index, b.Data, b.PrevHash)
	return h.Sum64()
}

// Chain is an append-only sequence of character blocks. The zero value
// is not usable; create chains with New.
type Chain struct {
	runID  uuid.UUID
	blocks []Block
}

// New creates a chain tagged with a fresh run ID. The run ID seeds the
// genesis hash, so two runs never produce identical chains.
func New() *Chain {
	return NewWithRunID(uuid.New())
}

// NewWithRunID creates a chain seeded with a specific run ID
func NewWithRunID(id uuid.UUID) *Chain {
	return &Chain{runID: id}
}

// RunID returns the run ID the chain was created with
func (c *Chain) RunID() uuid.UUID {
	return c.runID
}

// Len returns the number of mined blocks
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Mine appends a block for char, linked to the previous block
func (c *Chain) Mine(char rune) *Chain {
	prev := c.genesisHash()
	if n := len(c.blocks); n > 0 {
		prev = c.blocks[n-1].Hash()
	}
	c.blocks = append(c.blocks, Block{
		Index:    len(c.blocks),
		Data:     char,
		PrevHash: prev,
	})
	return c
}

// VerifyAndExtract walks the chain, checks every link, and returns the
// concatenated characters
func (c *Chain) VerifyAndExtract() (string, error) {
	var sb strings.Builder
	prev := c.genesisHash()
	for i, b := range c.blocks {
		if b.PrevHash != prev {
			return "", fmt.Errorf("chain corrupted at block %d: prev hash %016x, want %016x", i, b.PrevHash, prev)
		}
		sb.WriteRune(b.Data)
		prev = b.Hash()
	}
	return sb.String(), nil
}

func (c *Chain) genesisHash() uint64 {
	h := fnv.New64a()
	h.Write(c.runID[:])
	return h.Sum64()
}
