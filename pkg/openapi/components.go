package openapi

import "maps"

func errorBody() map[string]*MediaType {
	return map[string]*MediaType{
		"application/json": {
			Schema: &Schema{
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
				Required: []string{"error"},
			},
		},
	}
}

// NewComponents creates Components with shared schemas and error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":       {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"pageSize":   {Type: "integer", Description: "Results per page", Example: 10},
					"searchTerm": {Type: "string", Description: "Case-insensitive substring filter"},
					"sort":       {Type: "string", Description: "Comma-separated sort fields. Prefix with - for descending. Example: lastName,-yearsOfExperience"},
				},
			},
		},
		Responses: map[string]*Response{
			"NotFound": {
				Description: "Resource not found",
				Content:     errorBody(),
			},
			"InternalError": {
				Description: "The request could not be completed",
				Content:     errorBody(),
			},
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
