// Package embedded provides access to embedded catalog data files.
package embedded

import _ "embed"

// ConstantsCatalogData contains the embedded physical constant catalog
// YAML data.
//
//go:embed constants.yaml
var ConstantsCatalogData []byte
