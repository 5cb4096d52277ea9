package util

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	in := []int{0, 1, 2, 3}
	assert.Equal(t, []string{"0", "1", "2", "3"}, Map(in, strconv.Itoa))
	assert.Empty(t, Map([]int(nil), strconv.Itoa))
}

func TestRemovePrefix(t *testing.T) {
	rest, ok := RemovePrefix("-lpthread", "-l")
	assert.True(t, ok)
	assert.Equal(t, "pthread", rest)

	rest, ok = RemovePrefix("main.o", "-l")
	assert.False(t, ok)
	assert.Equal(t, "main.o", rest)

	rest, ok = RemovePrefix("-l", "-l")
	assert.True(t, ok)
	assert.Equal(t, "", rest)
}
