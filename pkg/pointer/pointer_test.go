// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gutensearch/pkg/pointer"
)

/*
TestVal returns the zero value for nil pointers.
*/
func TestVal(t *testing.T) {
	assert.Equal(t, "Jane Austen", pointer.Val(pointer.To("Jane Austen")))
	assert.Equal(t, "", pointer.Val[string](nil))
	assert.Equal(t, 0, pointer.Val[int](nil))
}
