// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/species"
)

// InitCatalog loads the species catalog from path, or returns the built-in
// first-generation catalog when path is empty.
//
// ============================================================
// DEVELOPER: Ship a custom catalog via CATALOG_PATH.
// ============================================================
// The YAML file lists species with their evolution target and level:
//
// species:
//   - id: "004"
//     name: Charmander
//     evolves_to: Charmeleon   # id or name
//     evolution_level: 16
//     egg: true
// ============================================================
func InitCatalog(path string) (*species.Catalog, error) {
	if path == "" {
		catalog := species.Builtin()
		logrus.Infof("using built-in species catalog (%d species)", catalog.Len())
		return catalog, nil
	}

	catalog, err := species.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load species catalog: %w", err)
	}
	return catalog, nil
}
