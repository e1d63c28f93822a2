package memory

import (
	"io"
	"log"
	"os"
	"sort"
	"time"
)

var compactionLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("CONICS_DEBUG_COMPACTION") == "1" {
		compactionLogger = log.New(os.Stdout, "[compaction] ", log.Ltime|log.Lmsgprefix)
	}
}

// compactionCandidates returns the plots whose buffers are below
// DefragThreshold utilization and would fit a smaller capacity, sparsest
// first.
func compactionCandidates(buffers map[PlotID]*buffer) []PlotID {
	var candidates []PlotID
	for id, b := range buffers {
		util := b.utilization()
		if util >= DefragThreshold {
			compactionLogger.Printf("plot#%03d - TOO DENSE (%.1f%% util)", id, util*100)
			continue
		}
		if capacity, err := capacityFor(b.count); err != nil || capacity >= b.capacity {
			continue // already as small as it gets
		}
		compactionLogger.Printf("plot#%03d - CANDIDATE (%.1f%% util, %d/%d vertices)", id, util*100, b.count, b.capacity)
		candidates = append(candidates, id)
	}

	sort.Slice(candidates, func(i, j int) bool {
		ui, uj := buffers[candidates[i]].utilization(), buffers[candidates[j]].utilization()
		if ui != uj {
			return ui < uj
		}
		return candidates[i] < candidates[j]
	})
	return candidates
}

// TryCompaction shrinks up to DefragMaxPerFrame sparse buffers, returning how
// many were shrunk. It is meant to be called once per frame.
func (bs *BufferStore) TryCompaction() int {
	candidates := compactionCandidates(bs.buffers)
	if len(candidates) == 0 {
		return 0
	}

	start := time.Now()
	compacted := 0
	for _, id := range candidates {
		if compacted >= DefragMaxPerFrame {
			break
		}
		b := bs.buffers[id]
		capacity, err := capacityFor(b.count)
		if err != nil {
			continue
		}
		compactionLogger.Printf("plot#%03d - shrinking %d -> %d vertices", id, b.capacity, capacity)
		b.resize(capacity, b.count)
		compacted++
	}

	bs.stats.CompactionEvents += compacted
	bs.stats.LastCompactionTimeUs = float64(time.Since(start).Microseconds())
	return compacted
}
