// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package trackerclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caspereye/stakingtracker/api"
	"github.com/caspereye/stakingtracker/api/types"
	"github.com/caspereye/stakingtracker/builtin"
	"github.com/caspereye/stakingtracker/health"
	"github.com/caspereye/stakingtracker/lvldb"
	"github.com/caspereye/stakingtracker/runtime"
	"github.com/caspereye/stakingtracker/state"
)

func newNode(t *testing.T, deploy bool) *Client {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stater, err := state.NewStater(db, 0)
	require.NoError(t, err)
	executor := runtime.New(stater, runtime.Options{})

	h := health.New(0)
	if deploy {
		_, err = executor.Deploy(context.Background())
		require.NoError(t, err)
		h.Deployed(true)
	}

	ts := httptest.NewServer(api.New(executor, h, api.Options{}))
	t.Cleanup(ts.Close)
	return New(ts.URL + "/")
}

func TestClient_Snapshots(t *testing.T) {
	c := newNode(t, true)
	ctx := context.Background()

	s, err := c.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.Snapshot{RiskScore: 50}, s)

	for _, req := range []*types.SnapshotRequest{
		{TotalStakedK: 100, WhaleCount: 1, RiskScore: 10, ValidatorCount: 5},
		{TotalStakedK: 200, WhaleCount: 2, RiskScore: 20, ValidatorCount: 10},
	} {
		res, err := c.RecordSnapshot(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.Reverted)
	}

	s, err = c.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, &types.Snapshot{
		TotalStakedK:   200,
		WhaleCount:     2,
		RiskScore:      20,
		ValidatorCount: 10,
		SnapshotCount:  2,
	}, s)

	v, err := c.GetField(ctx, "risk-score")
	require.NoError(t, err)
	assert.Equal(t, uint64(20), v)

	_, err = c.GetField(ctx, "nope")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	storage, err := c.Storage(ctx, "last_update_block")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000000", storage.Value)
}

func TestClient_Call(t *testing.T) {
	c := newNode(t, true)
	ctx := context.Background()

	getCount, _ := builtin.StakingTracker.ABI.MethodByName("getSnapshotCount")
	input, err := getCount.EncodeInput()
	require.NoError(t, err)

	record, _ := builtin.StakingTracker.ABI.MethodByName("recordSnapshot")
	data, err := record.EncodeInput(uint64(1000), uint32(5), uint8(25), uint32(100))
	require.NoError(t, err)

	res, err := c.Inspect(ctx, data)
	require.NoError(t, err)
	assert.False(t, res.Reverted)

	res, err = c.Call(ctx, data)
	require.NoError(t, err)
	assert.False(t, res.Reverted)

	res, err = c.Inspect(ctx, input)
	require.NoError(t, err)
	values, err := getCount.DecodeOutput(res.Data)
	require.NoError(t, err)
	assert.Equal(t, []any{uint32(1)}, values)

	res, err = c.Call(ctx, []byte{0xff})
	require.NoError(t, err)
	assert.True(t, res.Reverted)
}

func TestClient_Health(t *testing.T) {
	ctx := context.Background()

	status, err := newNode(t, true).Health(ctx)
	require.NoError(t, err)
	assert.True(t, status.Healthy)

	status, err = newNode(t, false).Health(ctx)
	assert.Error(t, err)
	require.NotNil(t, status)
	assert.False(t, status.Deployed)

	_, err = newNode(t, false).GetSnapshot(ctx)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestClient_BadResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tracker", r.URL.Path)
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	_, err := New(ts.URL).GetSnapshot(context.Background())
	assert.ErrorContains(t, err, "unable to unmarshal snapshot")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(ts.URL).GetSnapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_StorageKeyEscaped(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contracts/storage/slot%3Fx%2Fy", r.URL.EscapedPath())
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"key":"0x00","value":"0x00"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).Storage(context.Background(), "slot?x/y")
	assert.NoError(t, err)
}
