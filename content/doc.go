// Package content models page trees and the vertices used to crawl them.
//
// A page node is any object with a "content" property: a PageTreeNode, or
// a decoded map such as {"title": "Intro", "content": "...", "children": [...]}.
// Two views are offered:
//
//   - ContentNodeVertex keys a node by "content" and "children", so routes
//     reach into page bodies: [0, "children", 1, "content", "body"].
//   - IndexedNodeVertex keys a node by child position only, so routes read
//     as outline positions: [0, 1].
//
// NewContentCrawler and NewIndexedContentTreeCrawler bind those views to a
// crawler.KeyCrawler; NewPageTreeSearchResolver resolves search paths of
// property matches and keys over the content view.
//
// The style helpers compare and merge StyleRuleDescription sets.
package content
