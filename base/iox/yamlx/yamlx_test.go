// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string  `yaml:"name"`
	Value float32 `yaml:"value"`
}

func TestRead(t *testing.T) {
	var ts testStruct
	require.NoError(t, Read(&ts, strings.NewReader("name: tip\nvalue: 2.5\n")))
	assert.Equal(t, testStruct{"tip", 2.5}, ts)

	assert.Error(t, Read(&ts, strings.NewReader("unknown: 1\n")))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, Save(&testStruct{"saved", 4}, fn))
	var ts testStruct
	require.NoError(t, Open(&ts, fn))
	assert.Equal(t, testStruct{"saved", 4}, ts)
}
