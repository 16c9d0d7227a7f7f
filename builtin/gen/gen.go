// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gen

import (
	"embed"
	"fmt"
)

//go:embed compiled
var compiled embed.FS

// Asset loads the named asset, e.g. "compiled/StakingTracker.abi".
func Asset(name string) ([]byte, error) {
	return compiled.ReadFile(name)
}

// MustAsset is like Asset but panics when the asset can't be found.
func MustAsset(name string) []byte {
	data, err := Asset(name)
	if err != nil {
		panic(fmt.Sprintf("asset %s not found: %v", name, err))
	}
	return data
}
