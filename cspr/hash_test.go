// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cspr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlake2b(t *testing.T) {
	data := []byte("StakingTracker")
	single := Blake2b(data)
	split := Blake2b(data[:7], data[7:])
	assert.Equal(t, single, split)
	assert.False(t, single.IsZero())
}

func TestBytes32JSON(t *testing.T) {
	original := `"0x000000000000000000000000000000000000000000000000736e617073686f74"`

	var b Bytes32
	assert.NoError(t, json.Unmarshal([]byte(original), &b))
	assert.Equal(t, BytesToBytes32([]byte("snapshot")), b)

	out, err := json.Marshal(&b)
	assert.NoError(t, err)
	assert.Equal(t, original, string(out))
}

func TestParseBytes32(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"prefixed", "0x" + "01" + "00000000000000000000000000000000000000000000000000000000000000", false},
		{"bare", "0100000000000000000000000000000000000000000000000000000000000000", false},
		{"bad prefix", "1x0100000000000000000000000000000000000000000000000000000000000000", true},
		{"short", "0x01", true},
		{"not hex", "zz00000000000000000000000000000000000000000000000000000000000000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBytes32(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, byte(1), b[0])
		})
	}
}

func TestMotesToKiloCSPR(t *testing.T) {
	assert.Equal(t, uint64(0), MotesToKiloCSPR(999*MotesPerCSPR))
	assert.Equal(t, uint64(1), MotesToKiloCSPR(1000*MotesPerCSPR))
	assert.Equal(t, uint64(100), MotesToKiloCSPR(WhaleThresholdCSPR*MotesPerCSPR))
}
