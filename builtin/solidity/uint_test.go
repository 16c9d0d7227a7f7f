// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caspereye/stakingtracker/builtin/gascharger"
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/lvldb"
	"github.com/caspereye/stakingtracker/state"
)

func newContext(t *testing.T) (*Context, *gascharger.Charger) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	stater, err := state.NewStater(db, 0)
	require.NoError(t, err)

	charger := gascharger.New(0)
	return NewContext(cspr.Blake2b([]byte("test")), stater.NewState(), charger.Charge), charger
}

func TestUint64(t *testing.T) {
	ctx, charger := newContext(t)
	u := NewUint64(ctx, SlotOf("u64"))

	v, err := u.Get()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), v)
	assert.Equal(t, cspr.SloadGas, charger.TotalGas())

	require.NoError(t, u.Set(math.MaxUint64))
	assert.Equal(t, cspr.SloadGas+cspr.SstoreSetGas, charger.TotalGas())

	v, err = u.Get()
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	// overwriting a non-zero slot costs a reset
	require.NoError(t, u.Set(7))
	assert.Equal(t, 2*cspr.SloadGas+cspr.SstoreSetGas+cspr.SstoreResetGas, charger.TotalGas())

	// writing zero deletes the slot
	require.NoError(t, u.Set(0))
	raw, err := ctx.State().GetRawStorage(ctx.Contract(), u.Pos())
	assert.NoError(t, err)
	assert.Empty(t, raw)
}

func TestUint8AndUint32(t *testing.T) {
	ctx, _ := newContext(t)

	u8 := NewUint8(ctx, SlotOf("u8"))
	require.NoError(t, u8.Set(255))
	v8, err := u8.Get()
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), v8)

	u32 := NewUint32(ctx, SlotOf("u32"))
	require.NoError(t, u32.Set(math.MaxUint32))
	v32, err := u32.Get()
	assert.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v32)

	word, err := ctx.State().GetStorage(ctx.Contract(), SlotOf("u32"))
	assert.NoError(t, err)
	assert.Equal(t, cspr.BytesToBytes32([]byte{0xff, 0xff, 0xff, 0xff}), word)
}

func TestUintOverflowingSlot(t *testing.T) {
	ctx, _ := newContext(t)

	// a word wider than the variable type can't be read back
	ctx.State().SetStorage(ctx.Contract(), SlotOf("u8"), cspr.BytesToBytes32([]byte{0x01, 0x00}))
	_, err := NewUint8(ctx, SlotOf("u8")).Get()
	assert.Error(t, err)

	v, err := NewUint32(ctx, SlotOf("u8")).Get()
	assert.NoError(t, err)
	assert.Equal(t, uint32(256), v)
}

func TestSlotOf(t *testing.T) {
	assert.Equal(t, cspr.BytesToBytes32([]byte("snapshot_count")), SlotOf("snapshot_count"))
	assert.NotEqual(t, SlotOf("whale_count"), SlotOf("validator_count"))
}
