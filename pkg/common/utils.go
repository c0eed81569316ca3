// Copyright (c) 2023 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"strings"

	"github.com/google/uuid"
)

// MakeTraceID create new traceID
// example: GetCompanion_1b4e28ba2fa1
func MakeTraceID(identifiers ...string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if len(identifiers) == 0 {
		return id
	}

	return strings.Join(identifiers, "_") + "_" + id
}
