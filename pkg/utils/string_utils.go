// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"github.com/moneyprinter/protocol-deploy/pkg/constants"
)

// MaskSecret keeps at most the last four characters of s.
// Short secrets are masked entirely.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return constants.RedactedSecret
	}
	return constants.RedactedSecret + s[len(s)-4:]
}

// RedactArgs returns a copy of args where every occurrence of a secret is masked
func RedactArgs(args []string, secrets ...string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		for _, s := range secrets {
			if s != "" && a == s {
				out[i] = MaskSecret(s)
				break
			}
		}
	}
	return out
}
