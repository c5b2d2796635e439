package openai

import "github.com/sashabaranov/go-openai/jsonschema"

// Structured-output schemas for the extraction tasks. Each chat completion
// is forced into one of these shapes via the json_schema response format.

var categoriesSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"categories": {
			Type:        jsonschema.Array,
			Description: "Categories the user wants, from the available list",
			Items:       &jsonschema.Definition{Type: jsonschema.String},
		},
		"excludeCategories": {
			Type:        jsonschema.Array,
			Description: "Categories the user explicitly rejects, from the available list",
			Items:       &jsonschema.Definition{Type: jsonschema.String},
		},
	},
	Required: []string{"categories", "excludeCategories"},
}

var brandsSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"brands": {
			Type:        jsonschema.Array,
			Description: "Brands the user wants, with proper capitalization",
			Items:       &jsonschema.Definition{Type: jsonschema.String},
		},
		"excludeBrands": {
			Type:        jsonschema.Array,
			Description: "Brands the user explicitly rejects",
			Items:       &jsonschema.Definition{Type: jsonschema.String},
		},
	},
	Required: []string{"brands", "excludeBrands"},
}

var priceSortingSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"price": {
			Type:        jsonschema.Object,
			Description: "Price condition, or null when the query has no numbers",
			Properties: map[string]jsonschema.Definition{
				"amount": {
					Type:        jsonschema.Number,
					Description: "The primary price value",
				},
				"operator": {
					Type:        jsonschema.String,
					Description: "Comparison operator",
					Enum:        []string{"eq", "lt", "gt", "range"},
				},
				"maxAmount": {
					Type:        jsonschema.Number,
					Description: "Upper limit when operator is 'range', otherwise null",
				},
			},
			Required: []string{"amount", "operator"},
		},
		"sorting": {
			Type:        jsonschema.Object,
			Description: "Sorting preference, or null when none is expressed",
			Properties: map[string]jsonschema.Definition{
				"field": {
					Type: jsonschema.String,
					Enum: []string{"price"},
				},
				"order": {
					Type: jsonschema.String,
					Enum: []string{"asc", "desc"},
				},
			},
			Required: []string{"field", "order"},
		},
	},
}

var attributeMappingSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"mappings": {
			Type:        jsonschema.Array,
			Description: "List of attribute-to-value mappings",
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"attributeName": {
						Type:        jsonschema.String,
						Description: "The exact attribute name from the product catalog",
					},
					"selectedValues": {
						Type:        jsonschema.Array,
						Description: "Attribute values that match user intent",
						Items:       &jsonschema.Definition{Type: jsonschema.String},
					},
					"confidence": {
						Type:        jsonschema.String,
						Description: "Confidence level of this mapping",
						Enum:        []string{"high", "medium", "low"},
					},
				},
				Required: []string{"attributeName", "selectedValues", "confidence"},
			},
		},
		"reasoning": {
			Type:        jsonschema.String,
			Description: "Brief explanation of the mapping logic",
		},
	},
	Required: []string{"mappings", "reasoning"},
}
