package scanner

import (
	"regexp"
	"strings"

	"github.com/farmstack/go-apidetails-generator/internal/report"
)

var (
	routerGroupRe = regexp.MustCompile(`(?i)Router::group\('([^']+)'\s*,\s*\[([^\]]*)\]`)
	routerRouteRe = regexp.MustCompile(`(?i)Router::(get|post|put|patch|delete)\('([^']+)'\s*,\s*\[([^\]]+)\]`)
)

const routerRouteDescription = "Router route"

// scanRoutesFile extracts fluent registration-style routes from one routes
// file, read as a single string. At most one group call is honored — the
// first in the file — and its prefix and middleware apply to every route
// registered in the file. Whether the group call textually precedes a route
// call is not checked; only its presence in the file matters.
func scanRoutesFile(sourcePath, content string) []report.Route {
	groupPrefix := ""
	var groupMiddleware []string
	if m := routerGroupRe.FindStringSubmatch(content); m != nil {
		groupPrefix = m[1]
		groupMiddleware = splitMiddleware(m[2])
	}

	var routes []report.Route
	for _, m := range routerRouteRe.FindAllStringSubmatch(content, -1) {
		routes = append(routes, report.Route{
			Method:      strings.ToUpper(m[1]),
			Path:        groupPrefix + m[2],
			Description: routerRouteDescription,
			Controller:  strings.TrimSpace(m[3]),
			Source:      sourcePath,
			Middleware:  groupMiddleware,
		})
	}

	return routes
}
