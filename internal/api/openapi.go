// Package api provides the OpenAPI 3.0 description of the catalog server
// and a small documentation page. The specification is written by hand and
// kept in step with the handlers in internal/server; it exists so clients
// can discover the API and generate bindings without reading Go source.
package api

import (
	"encoding/json"
	"net/http"
)

// HandleDocs serves an interactive documentation page backed by the spec
func HandleDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html := `<!DOCTYPE html>
<html>
<head>
    <title>promptdeck API Documentation</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui.css" />
    <style>
        html { box-sizing: border-box; overflow-y: scroll; }
        *, *:before, *:after { box-sizing: inherit; }
        body { margin:0; background: #fafafa; }
    </style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            SwaggerUIBundle({
                url: '/openapi.json',
                dom_id: '#swagger-ui',
                presets: [SwaggerUIBundle.presets.apis],
                layout: 'BaseLayout'
            });
        };
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(html))
}

// HandleOpenAPISpec serves the machine-readable OpenAPI document
func HandleOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(openAPISpec())
}

// openAPISpec returns the OpenAPI 3.0 specification for the catalog server
func openAPISpec() map[string]interface{} {
	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "promptdeck API",
			"description": "Prompt-engineering example catalog, template rendering, and quality scoring",
			"version":     "1.0.0",
		},
		"paths": map[string]interface{}{
			"/examples": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "List catalog examples",
					"parameters": []map[string]interface{}{
						queryParam("category", "Filter by category"),
						queryParam("difficulty", "Filter by difficulty (beginner, intermediate, advanced)"),
						queryParam("limit", "Maximum number of results"),
					},
					"responses": okResponse("Example listing"),
				},
			},
			"/examples/{slug}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "Get one example with its variables and score",
					"parameters": []map[string]interface{}{
						{
							"name":     "slug",
							"in":       "path",
							"required": true,
							"schema":   map[string]string{"type": "string"},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Example detail"},
						"404": map[string]interface{}{"description": "Example not found"},
					},
				},
			},
			"/search": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "Fuzzy search across title, description, slug, and category",
					"parameters": []map[string]interface{}{
						queryParam("q", "Search query (required)"),
					},
					"responses": okResponse("Matching examples"),
				},
			},
			"/categories": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":   "List distinct categories",
					"responses": okResponse("Category names"),
				},
			},
			"/render": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Substitute variable bindings into a template",
					"requestBody": jsonBody("RenderRequest"),
					"responses":   okResponse("Rendered text plus the template's variables"),
				},
			},
			"/score": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Score a template against the quality heuristics",
					"requestBody": jsonBody("ScoreRequest"),
					"responses":   okResponse("Score with strengths and improvements"),
				},
			},
			"/variables": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Extract placeholder names from a template",
					"requestBody": jsonBody("VariablesRequest"),
					"responses":   okResponse("Variable names in first-seen order"),
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":   "Health check",
					"responses": okResponse("Service status"),
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"RenderRequest": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"template": map[string]string{"type": "string"},
						"slug":     map[string]string{"type": "string"},
						"bindings": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"name":  map[string]string{"type": "string"},
									"value": map[string]string{"type": "string"},
								},
							},
						},
					},
				},
				"ScoreRequest": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"template": map[string]string{"type": "string"},
						"slug":     map[string]string{"type": "string"},
					},
				},
				"VariablesRequest": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"template": map[string]string{"type": "string"},
					},
					"required": []string{"template"},
				},
				"ScoreResult": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"score":        map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 100},
						"strengths":    map[string]interface{}{"type": "array", "items": map[string]string{"type": "string"}},
						"improvements": map[string]interface{}{"type": "array", "items": map[string]string{"type": "string"}},
					},
				},
			},
		},
	}
}

func queryParam(name, description string) map[string]interface{} {
	return map[string]interface{}{
		"name":        name,
		"in":          "query",
		"description": description,
		"schema":      map[string]string{"type": "string"},
	}
}

func jsonBody(schema string) map[string]interface{} {
	return map[string]interface{}{
		"required": true,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]string{"$ref": "#/components/schemas/" + schema},
			},
		},
	}
}

func okResponse(description string) map[string]interface{} {
	return map[string]interface{}{
		"200": map[string]interface{}{"description": description},
	}
}
