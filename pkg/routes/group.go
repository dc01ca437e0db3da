package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/advocates/pkg/openapi"
)

// Group organizes routes under a common prefix with shared tags.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

// Describe adds every documented route in groups to spec.Paths.
// basePath is prepended to each path, matching the prefix the module is mounted under.
func Describe(spec *openapi.Spec, basePath string, groups ...Group) {
	for _, group := range groups {
		describeGroup(spec, basePath, nil, group)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}

func describeGroup(spec *openapi.Spec, parentPrefix string, parentTags []string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	tags := append(append([]string{}, parentTags...), group.Tags...)

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}

		path := openAPIPath(fullPrefix + route.Pattern)
		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}
		item.Set(route.Method, &op)
	}

	for _, child := range group.Children {
		describeGroup(spec, fullPrefix, tags, child)
	}
}

// openAPIPath converts a ServeMux pattern to an OpenAPI path template,
// dropping the {$} anchor and the ... wildcard suffix.
func openAPIPath(pattern string) string {
	path := strings.TrimSuffix(pattern, "{$}")
	path = strings.ReplaceAll(path, "...}", "}")
	if path == "" {
		return "/"
	}
	return path
}
