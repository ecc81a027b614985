// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.ErrorIs(t, Log(fmt.Errorf("wrapped: %w", errTest)), errTest)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, errTest))
	assert.Panics(t, func() { Must(errTest) })
	assert.NotPanics(t, func() { Must(nil) })
	assert.ErrorIs(t, Join(errTest, New("other")), errTest)
}
