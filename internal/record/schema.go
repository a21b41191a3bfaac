package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildRecordSchema returns the output contract as a JSON-Schema
// (draft 2020-12 subset) generic map. Every section and scalar is
// required; the contact lists must be present even when empty.
func BuildRecordSchema() map[string]any {
	stringProp := func() map[string]any {
		return map[string]any{"type": "string"}
	}
	stringList := func() map[string]any {
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	}
	section := func(props map[string]any, required []string) map[string]any {
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
			"required":             required,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"tender_info": section(map[string]any{
				"reference_number":  stringProp(),
				"title":             stringProp(),
				"issuing_authority": stringProp(),
				"location":          stringProp(),
			}, []string{"reference_number", "title", "issuing_authority", "location"}),
			"timeline_info": section(map[string]any{
				"start_date":                   stringProp(),
				"end_date":                     stringProp(),
				"physical_submission_end_date": stringProp(),
				"technical_bid_opening":        stringProp(),
			}, []string{"start_date", "end_date", "physical_submission_end_date", "technical_bid_opening"}),
			"financial_info": section(map[string]any{
				"tender_fee": stringProp(),
				"emd":        stringProp(),
			}, []string{"tender_fee", "emd"}),
			"eligibility_info": section(map[string]any{
				"eligibility": stringProp(),
			}, []string{"eligibility"}),
			"technical_info": section(map[string]any{
				"technical_specifications": stringProp(),
			}, []string{"technical_specifications"}),
			"contact_info": section(map[string]any{
				"emails":        stringList(),
				"phone_numbers": stringList(),
			}, []string{"emails", "phone_numbers"}),
		},
		"required": []string{
			"tender_info", "timeline_info", "financial_info",
			"eligibility_info", "technical_info", "contact_info",
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
