// Package domain contains the core entities of the news aggregator:
// topics, articles, comments, and users. The types here carry no
// persistence or transport concerns; stores and handlers depend on
// this package, never the other way around.
package domain
