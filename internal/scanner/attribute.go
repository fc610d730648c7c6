package scanner

import (
	"regexp"
	"strings"

	"github.com/farmstack/go-apidetails-generator/internal/report"
)

// Heuristic extraction: route declarations are recovered with regular
// expressions over raw text, not a grammar-aware parser. Nested brackets,
// multi-line declarations and unusual formatting will silently produce
// missing or malformed records. That failure mode is accepted.
var (
	routeGroupRe = regexp.MustCompile(`#\[RouteGroup\(([^\)]*)\)\]`)
	routeRe      = regexp.MustCompile(`#\[Route\(([^\)]*)\)\]`)
	classRe      = regexp.MustCompile(`class\s+([A-Za-z0-9_]+)`)
	functionRe   = regexp.MustCompile(`function\s+([a-zA-Z0-9_]+)\s*\(`)
	stringRe     = regexp.MustCompile(`'([^']*)'`)

	methodArgRe      = regexp.MustCompile(`method\s*:\s*'([^']+)'`)
	descriptionArgRe = regexp.MustCompile(`description\s*:\s*'([^']+)'`)
	middlewareArgRe  = regexp.MustCompile(`middleware\s*:\s*\[([^\]]*)\]`)
)

// scanAttributeFile extracts attribute-style routes from one file. All scan
// state is local: the current group prefix and owning class persist for the
// rest of the file once set, overwritten whenever a new declaration is seen,
// and reset at the next file simply because each file gets a fresh call.
func scanAttributeFile(sourcePath string, lines []string) []report.Route {
	var routes []report.Route

	groupPrefix := ""
	className := ""
	inBlockComment := false

	for i, line := range lines {
		stripped := strings.TrimLeft(line, " \t")
		if strings.Contains(stripped, "/*") {
			inBlockComment = true
		}
		if strings.Contains(stripped, "*/") {
			// The close line itself is skipped from further matching.
			inBlockComment = false
			continue
		}
		if inBlockComment || strings.HasPrefix(stripped, "//") || strings.HasPrefix(stripped, "*") {
			continue
		}

		if m := routeGroupRe.FindStringSubmatch(line); m != nil {
			if s := stringRe.FindStringSubmatch(m[1]); s != nil {
				groupPrefix = s[1]
			}
		}

		if m := classRe.FindStringSubmatch(line); m != nil {
			className = m[1]
		}

		m := routeRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		pathPart, method, description, middleware := parseRouteArgs(m[1])
		if method == "" {
			method = "GET"
		}

		// The handler is the first function declared within the next 5 lines.
		handler := ""
		for j := i + 1; j < len(lines) && j < i+6; j++ {
			if fm := functionRe.FindStringSubmatch(lines[j]); fm != nil {
				handler = fm[1]
				break
			}
		}

		routes = append(routes, report.Route{
			Method:      method,
			Path:        groupPrefix + pathPart,
			Description: description,
			Controller:  className,
			Handler:     handler,
			Source:      sourcePath,
			Middleware:  middleware,
		})
	}

	return routes
}

// parseRouteArgs pulls the route attribute's arguments out of its raw
// argument text: the first quoted string is the path fragment, the method,
// description and middleware arguments are keyword-style.
func parseRouteArgs(argText string) (path, method, description string, middleware []string) {
	if s := stringRe.FindStringSubmatch(argText); s != nil {
		path = s[1]
	}
	if m := methodArgRe.FindStringSubmatch(argText); m != nil {
		method = strings.ToUpper(m[1])
	}
	if m := descriptionArgRe.FindStringSubmatch(argText); m != nil {
		description = m[1]
	}
	if m := middlewareArgRe.FindStringSubmatch(argText); m != nil {
		middleware = splitMiddleware(m[1])
	}
	return path, method, description, middleware
}

func splitMiddleware(listText string) []string {
	var names []string
	for _, part := range strings.Split(listText, ",") {
		name := strings.Trim(strings.TrimSpace(part), "'")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
