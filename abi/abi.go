// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package abi is the call/response envelope of contracts: Ethereum style
// 4-byte selectors followed by ABI packed arguments.
package abi

import (
	"bytes"
	"sort"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// ABI holds information about methods of contract.
type ABI struct {
	constructor  *Method
	nameToMethod map[string]*Method
	methods      map[MethodID]*Method
}

// New create an ABI instance from its JSON definition.
func New(data []byte) (*ABI, error) {
	parsed, err := ethabi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parse abi")
	}

	abi := &ABI{
		constructor:  &Method{EmptyMethodID, parsed.Constructor},
		nameToMethod: make(map[string]*Method),
		methods:      make(map[MethodID]*Method),
	}
	for name, ethMethod := range parsed.Methods {
		var id MethodID
		copy(id[:], ethMethod.ID)
		method := &Method{id, ethMethod}
		abi.methods[id] = method
		abi.nameToMethod[name] = method
	}
	return abi, nil
}

// Constructor returns the constructor method.
func (a *ABI) Constructor() *Method {
	return a.constructor
}

// MethodByInput find the method for given input.
// If the input shorter than MethodID, or method not found, an error returned.
func (a *ABI) MethodByInput(input []byte) (*Method, error) {
	id, err := ExtractMethodID(input)
	if err != nil {
		return nil, err
	}
	m, found := a.methods[id]
	if !found {
		return nil, errors.Errorf("method %v not found", id)
	}
	return m, nil
}

// MethodByName find method for the given method name.
func (a *ABI) MethodByName(name string) (*Method, bool) {
	m, found := a.nameToMethod[name]
	return m, found
}

// MethodByID returns method for given method id.
func (a *ABI) MethodByID(id MethodID) (*Method, bool) {
	m, found := a.methods[id]
	return m, found
}

// Methods returns all methods sorted by name.
func (a *ABI) Methods() []*Method {
	methods := make([]*Method, 0, len(a.methods))
	for _, m := range a.methods {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Name() < methods[j].Name()
	})
	return methods
}
