// Package bundle reads metadata from a bundle's info dictionary.
//
// A bundle is a directory holding one info file (Info.yaml, Info.yml,
// Info.toml or Info.json). Values are addressed by period-separated key paths
// such as "app.window.width". Lookups are memoized per bundle in an explicit
// cache owned by the [Bundle] value; there is no package-level state.
package bundle
