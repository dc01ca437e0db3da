package advocates

import (
	"github.com/JaimeStill/advocates/pkg/openapi"
	"github.com/JaimeStill/advocates/pkg/pagination"
)

// Schemas returns the component schemas referenced by advocate operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Advocate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                {Type: "integer", Format: "int64"},
				"firstName":         {Type: "string"},
				"lastName":          {Type: "string"},
				"city":              {Type: "string"},
				"degree":            {Type: "string", Example: "MD"},
				"specialties":       {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"yearsOfExperience": {Type: "integer", Minimum: openapi.Bound(0)},
				"phoneNumber":       {Type: "integer", Format: "int64", Example: 5551234567},
				"createdAt":         {Type: "string", Format: "date-time"},
			},
			Required: []string{
				"id", "firstName", "lastName", "city", "degree",
				"specialties", "yearsOfExperience", "phoneNumber",
			},
		},
		"AdvocatePage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":       {Type: "array", Items: openapi.SchemaRef("Advocate")},
				"total":      {Type: "integer", Minimum: openapi.Bound(0)},
				"page":       {Type: "integer", Minimum: openapi.Bound(1)},
				"pageSize":   {Type: "integer", Minimum: openapi.Bound(1)},
				"totalPages": {Type: "integer", Minimum: openapi.Bound(0)},
			},
			Required: []string{"data", "total", "page", "pageSize", "totalPages"},
		},
	}
}

func listOperation(cfg pagination.Config) *openapi.Operation {
	pageSize := openapi.QueryParam(pagination.ParamPageSize, "integer", "Results per page, clamped to the configured maximum", false)
	pageSize.Schema.Default = cfg.DefaultPageSize
	pageSize.Schema.Maximum = openapi.Bound(float64(cfg.MaxPageSize))

	page := openapi.QueryParam(pagination.ParamPage, "integer", "Page number (1-indexed)", false)
	page.Schema.Default = 1

	return &openapi.Operation{
		OperationID: "listAdvocates",
		Summary:     "List advocates",
		Description: "Returns one page of advocates. searchTerm matches first name, last name, city, degree, specialties and years of experience as a case-insensitive substring.",
		Parameters: []*openapi.Parameter{
			page,
			pageSize,
			openapi.QueryParam(pagination.ParamSearchTerm, "string", "Case-insensitive substring filter", false),
			openapi.QueryParam(pagination.ParamSort, "string", "Comma-separated sort fields, - prefix for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of advocates", "AdvocatePage"),
			500: openapi.ResponseRef("InternalError"),
		},
	}
}
