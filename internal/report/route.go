package report

import (
	"fmt"
	"sort"
	"strings"
)

// Route is the common record both extraction styles produce. Records are
// never deduplicated; several declarations may map to the same (path, method)
// pair and each keeps its own line in the report.
type Route struct {
	Method      string
	Path        string
	Description string
	Controller  string
	Handler     string
	Source      string
	Middleware  []string
}

// Coverage summarizes how much of the codebase the scan accounted for.
type Coverage struct {
	Total          int
	Attribute      int
	Router         int
	RoutesFilename string
	Missing        []string
}

// SortRoutes orders records by (path, method). The sort is stable so routes
// sharing both keys keep their encounter order.
func SortRoutes(routes []Route) {
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
}

// RenderCoverage renders the coverage summary and, when any controller file
// produced no route, the explicit list of those files.
func RenderCoverage(cov Coverage) []string {
	lines := []string{
		"## Coverage Summary",
		fmt.Sprintf("- Total routes: %d", cov.Total),
		fmt.Sprintf("- Attribute routes: %d", cov.Attribute),
		fmt.Sprintf("- %s routes: %d", cov.RoutesFilename, cov.Router),
		fmt.Sprintf("- Controllers without routes: %d", len(cov.Missing)),
		"",
	}

	if len(cov.Missing) > 0 {
		lines = append(lines, "## Potentially Missing Routes (Controllers without Route attributes)")
		for _, f := range cov.Missing {
			lines = append(lines, "- "+f)
		}
		lines = append(lines, "")
	}

	return lines
}

// RenderRoutes renders one section per distinct path. Routes must already be
// sorted; a path heading is emitted once per contiguous run of records
// sharing it.
func RenderRoutes(routes []Route) []string {
	var lines []string
	currentPath := ""
	havePath := false

	for _, r := range routes {
		if !havePath || r.Path != currentPath {
			currentPath = r.Path
			havePath = true
			lines = append(lines, "## "+currentPath)
		}

		description := r.Description
		if description == "" {
			description = "No description"
		}
		lines = append(lines, fmt.Sprintf("- **%s** — %s", r.Method, description))

		if r.Controller != "" || r.Handler != "" {
			if r.Handler != "" {
				lines = append(lines, fmt.Sprintf("  - Handler: %s::%s", r.Controller, r.Handler))
			} else {
				lines = append(lines, fmt.Sprintf("  - Handler: %s", r.Controller))
			}
		}
		if len(r.Middleware) > 0 {
			lines = append(lines, "  - Middleware: "+strings.Join(r.Middleware, ", "))
		}
		lines = append(lines, "  - Source: "+r.Source)
		lines = append(lines, "")
	}

	return lines
}
