// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"fmt"

	"github.com/caspereye/stakingtracker/abi"
	"github.com/caspereye/stakingtracker/builtin/solidity"
	"github.com/caspereye/stakingtracker/cspr"
	"github.com/caspereye/stakingtracker/state"
)

// InputError reports call data that doesn't match the method signature.
type InputError struct {
	cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("malformed input: %v", e.cause)
}

func (e *InputError) Unwrap() error {
	return e.cause
}

type methodKey struct {
	contract cspr.Bytes32
	id       abi.MethodID
}

var nativeMethods = make(map[methodKey]*NativeMethod)

// NativeMethod describes a native call.
type NativeMethod struct {
	contract cspr.Bytes32
	abi      *abi.Method
	run      func(env *Env) ([]any, error)
}

// FindNativeMethod looks up the method addressed by input on the given contract.
func FindNativeMethod(contract cspr.Bytes32, input []byte) (*NativeMethod, error) {
	id, err := abi.ExtractMethodID(input)
	if err != nil {
		return nil, &InputError{err}
	}
	m, ok := nativeMethods[methodKey{contract, id}]
	if !ok {
		return nil, &InputError{fmt.Errorf("method %v not found", id)}
	}
	return m, nil
}

// Name returns the method name.
func (n *NativeMethod) Name() string {
	return n.abi.Name()
}

// Const returns whether the method leaves the state untouched.
func (n *NativeMethod) Const() bool {
	return n.abi.Const()
}

// Call decodes input, runs the method and encodes its outputs.
func (n *NativeMethod) Call(st *state.State, charger solidity.UseGasFunc, input []byte) ([]byte, error) {
	args, err := n.abi.DecodeInput(input)
	if err != nil {
		return nil, &InputError{err}
	}

	out, err := n.run(&Env{
		state:    st,
		charger:  charger,
		contract: n.contract,
		args:     args,
	})
	if err != nil {
		return nil, err
	}
	return n.abi.EncodeOutput(out...)
}

// Env env of native call invocation.
type Env struct {
	state    *state.State
	charger  solidity.UseGasFunc
	contract cspr.Bytes32
	args     []any
}

// Args returns the decoded call arguments.
func (e *Env) Args() []any {
	return e.args
}

// State returns the state the call operates on.
func (e *Env) State() *state.State {
	return e.state
}

// Context returns the storage context of the called contract.
func (e *Env) Context() *solidity.Context {
	return solidity.NewContext(e.contract, e.state, e.charger)
}
