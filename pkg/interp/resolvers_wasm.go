package interp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// wasmModuleKey is the Package.Modules entry a WASMValidator looks for: the
// compiled WASM bytes of that package's validation logic.
const wasmModuleKey = "validate.wasm"

// WASMValidator runs a package's validation logic as a sandboxed WASM
// module, grounded in Mindburn-Labs-helm/core/pkg/runtime/sandbox's
// WASISandbox: deny-by-default, no filesystem, no network, CPU time bounded
// by context deadline. Where that sandbox runs an arbitrary pack's tool
// logic, this narrows the job to one input/output contract: stdin carries
// the candidate payload as JSON, stdout carries either "ok" or
// "reject: <reason>".
type WASMValidator struct {
	runtime wazero.Runtime
}

// NewWASMValidator constructs a runtime with no filesystem, network, or
// ambient authority wired in.
func NewWASMValidator(ctx context.Context) (*WASMValidator, error) {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return nil, fmt.Errorf("resolvers_wasm: instantiate WASI: %w", err)
	}
	return &WASMValidator{runtime: r}, nil
}

// Close releases the wazero runtime.
func (v *WASMValidator) Close(ctx context.Context) error {
	return v.runtime.Close(ctx)
}

// ValidatePackage loads pkg.Modules[wasmModuleKey] as a WASM module, runs
// it against payloadJSON on stdin, and interprets stdout as the verdict. A
// package with no registered validation module always passes.
func (v *WASMValidator) ValidatePackage(ctx context.Context, pkg *Package, payloadJSON []byte) *Error {
	raw, ok := pkg.Modules[wasmModuleKey]
	if !ok {
		return nil
	}
	wasmBytes, ok := raw.([]byte)
	if !ok {
		return PackageError(fmt.Sprintf("package %s: %s is not []byte", pkg.PackageID, wasmModuleKey))
	}

	compiled, err := v.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return PackageError(fmt.Sprintf("package %s: compile validator: %s", pkg.PackageID, err))
	}
	defer func() { _ = compiled.Close(ctx) }()

	var stdout, stderr bytes.Buffer
	modCfg := wazero.NewModuleConfig().
		WithName(string(pkg.PackageID) + "-validate").
		WithStartFunctions("_start").
		WithStdin(bytes.NewReader(payloadJSON)).
		WithStdout(&stdout).
		WithStderr(&stderr)

	mod, err := v.runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		if ctx.Err() != nil {
			return GenericInterpretationError(fmt.Sprintf("package %s: validator timed out", pkg.PackageID))
		}
		return PackageError(fmt.Sprintf("package %s: instantiate validator: %s", pkg.PackageID, err))
	}
	defer func() { _ = mod.Close(ctx) }()

	verdict := strings.TrimSpace(stdout.String())
	if verdict == "ok" {
		return nil
	}
	reason := strings.TrimPrefix(verdict, "reject:")
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "rejected by validator"
	}
	return ValidationError(fmt.Sprintf("package %s: %s", pkg.PackageID, reason))
}
