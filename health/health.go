// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"sync"
	"time"
)

type SnapshotIngestion struct {
	Count     uint32     `json:"count"`
	Timestamp *time.Time `json:"timestamp"`
}

type Status struct {
	Healthy           bool               `json:"healthy"`
	Deployed          bool               `json:"deployed"`
	SnapshotIngestion *SnapshotIngestion `json:"snapshotIngestion"`
}

// Health tracks whether the tracker is deployed and keeps receiving snapshots.
type Health struct {
	lock          sync.RWMutex
	deployed      bool
	lastSnapshot  time.Time
	snapshotCount uint32
	staleAfter    time.Duration
}

// New creates a Health. With staleAfter > 0 the node is unhealthy once no
// snapshot has been recorded for that long, zero disables the check.
func New(staleAfter time.Duration) *Health {
	return &Health{staleAfter: staleAfter}
}

func (h *Health) Deployed(deployed bool) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.deployed = deployed
}

func (h *Health) NewSnapshot(count uint32) {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.lastSnapshot = time.Now()
	h.snapshotCount = count
}

func (h *Health) Status() (*Status, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	ingestion := &SnapshotIngestion{Count: h.snapshotCount}
	if !h.lastSnapshot.IsZero() {
		ts := h.lastSnapshot
		ingestion.Timestamp = &ts
	}

	healthy := h.deployed
	if h.staleAfter > 0 {
		healthy = healthy && !h.lastSnapshot.IsZero() && time.Since(h.lastSnapshot) <= h.staleAfter
	}

	return &Status{
		Healthy:           healthy,
		Deployed:          h.deployed,
		SnapshotIngestion: ingestion,
	}, nil
}
