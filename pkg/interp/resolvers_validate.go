package interp

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaValidator holds one compiled JSON Schema per template, grounded in
// Mindburn-Labs-helm/core/pkg/firewall.PolicyFirewall's schema-per-name map.
// Where the firewall validates tool-call params, this validates a
// ContractInstance's Payload against its TemplateID's declared shape before
// a continuation is allowed to see it.
type SchemaValidator struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator returns an empty validator; register schemas with
// AddSchema before use.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{schemas: make(map[string]*jsonschema.Schema)}
}

// AddSchema compiles schemaJSON (a JSON Schema document) and registers it
// under templateID.
func (v *SchemaValidator) AddSchema(templateID, schemaJSON string) error {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := fmt.Sprintf("https://ledgercore.local/schema/%s.json", templateID)
	if err := c.AddResource(url, strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("resolvers_validate: load schema for %s: %w", templateID, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return fmt.Errorf("resolvers_validate: compile schema for %s: %w", templateID, err)
	}
	v.schemas[templateID] = compiled
	return nil
}

// ValidatePayload returns a Validation-domain *Error if inst's Payload
// fails the schema registered for inst.TemplateID. A template with no
// registered schema is treated as unconstrained and always passes.
func (v *SchemaValidator) ValidatePayload(inst *ContractInstance) *Error {
	schema, ok := v.schemas[inst.TemplateID]
	if !ok {
		return nil
	}
	if err := schema.Validate(inst.Payload); err != nil {
		return ValidationError(fmt.Sprintf("payload for %s failed schema: %s", inst.TemplateID, err))
	}
	return nil
}

// WrapContracts combines a plain Resolvers.Contracts function with schema
// validation. The returned function resolves cid, yields
// Failed(ContractNotFound(cid)) when the instance is nil, routes a schema
// failure through onInvalid instead of silently admitting a malformed
// payload, and otherwise invokes k(inst). The suspendable computation core
// has no channel to report a resolver-side validation error except through
// the continuation itself, so onInvalid is invoked and its Result[A] used
// as the rest of the computation.
func WrapContracts[A any](
	resolve func(ContractID) *ContractInstance,
	validator *SchemaValidator,
	onInvalid func(*Error) Result[A],
) func(ContractID, func(*ContractInstance) Result[A]) Result[A] {
	return func(cid ContractID, k func(*ContractInstance) Result[A]) Result[A] {
		inst := resolve(cid)
		if inst == nil {
			return Failed[A]{Err: ContractNotFoundError(cid)}
		}
		if validator != nil {
			if verr := validator.ValidatePayload(inst); verr != nil {
				return onInvalid(verr)
			}
		}
		return k(inst)
	}
}
