// Package keycrawler walks decoded values key by key: maps, slices,
// structs, ordered YAML mappings, YAML nodes and HTML nodes alike.
//
// Every walk keeps a route: the keys taken from the root, the vertices
// they were taken from and the value reached. Routes can be stored,
// replayed, extended or reverted, which is what the higher layers build on.
//
// Packages:
//
//	vertex/      keyed views over values and the rules choosing them
//	core/        routes, traversal state and the strategy contract
//	dfs/, bfs/   depth-first and breadth-first strategies
//	crawler/     traverse, search, route and map values with one strategy
//	search/      resolve paths of search terms (keys, property matches, JSONPath)
//	content/     page trees: page vertices, crawlers and style helpers
//	navigation/  step through a page tree in reading order
//	links/, breadcrumbs/, toc/ links, breadcrumbs and tables of contents for routes
//	routing/     named page paths and page URLs to routes and back
//	cmd/keycrawl the command line front end
//
// Quick example:
//
//	c := crawler.New()
//	route := c.CreateRouteFrom(doc, links.ParsePathText("pages.0.title"))
//	fmt.Println(route.Target)
//
//	go install github.com/katalvlaran/keycrawler/cmd/keycrawl@latest
package keycrawler
