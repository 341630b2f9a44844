package orchestrator

import (
	"context"
	"fmt"
)

// Result summarizes one completed sort: the decrypted, sorted plaintexts
// plus the Store's counters at the moment of the final drain.
type Result struct {
	Values      []uint32
	Comparisons int64
	Writes      int64
}

// SortValues is the end-to-end convenience path a caller like
// cmd/obliviousort uses: encrypt values, Initialize the Store, run Sort,
// drain and decrypt the final array. n must already be a power of two;
// callers with arbitrary-length input should pad with
// schedule.PadToPowerOfTwo first and Strip the result afterward.
func (o *Orchestrator) SortValues(ctx context.Context, values []uint32) (*Result, error) {
	cells := make([][]byte, len(values))
	for i, v := range values {
		c, err := o.adapter.Encrypt(v)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: encrypt initial value %d: %w", i, err)
		}
		cells[i] = c
	}

	n, err := o.client.Initialize(ctx, cells)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: initialize: %w", err)
	}

	if err := o.Sort(ctx, n); err != nil {
		return nil, err
	}

	finalCells, comparisons, writes, err := o.client.GetFinalArray(ctx)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: get final array: %w", err)
	}

	out := make([]uint32, len(finalCells))
	for i, c := range finalCells {
		v, err := o.adapter.Decrypt(c)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: decrypt final value %d: %w", i, err)
		}
		out[i] = v
	}

	return &Result{Values: out, Comparisons: comparisons, Writes: writes}, nil
}
