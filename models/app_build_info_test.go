// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_OrUnknown(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123").OrUnknown()

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, UnknownBuildValue, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())

	empty := AppBuildInfo{}.OrUnknown()
	assert.Equal(t, UnknownBuildValue, empty.BuildVersion())
	assert.Equal(t, UnknownBuildValue, empty.BuildCommit())
}
