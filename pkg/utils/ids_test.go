package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/taskengine-go/pkg/utils"
)

func TestGenerateTaskID_IncludesKindAndNormalizedSubject(t *testing.T) {
	id := utils.GenerateTaskID("craft", "iron pickaxe")

	assert.True(t, strings.HasPrefix(id, "craft-iron_pickaxe-"))
	suffix := id[len("craft-iron_pickaxe-"):]
	assert.Len(t, suffix, 8)
}

func TestGenerateTaskID_OmitsSubjectSegmentWhenEmpty(t *testing.T) {
	id := utils.GenerateTaskID("tick", "")

	assert.True(t, strings.HasPrefix(id, "tick-"))
	assert.Equal(t, 1, strings.Count(id, "-"))
	assert.Len(t, id, len("tick-")+8)
}

func TestGenerateTaskID_IsUniquePerCall(t *testing.T) {
	a := utils.GenerateTaskID("mine", "oak_log")
	b := utils.GenerateTaskID("mine", "oak_log")

	assert.NotEqual(t, a, b)
}

func TestMin_ReturnsSmaller(t *testing.T) {
	assert.Equal(t, 3, utils.Min(3, 7))
	assert.Equal(t, 3, utils.Min(7, 3))
}

func TestMin3_ReturnsSmallestOfThree(t *testing.T) {
	assert.Equal(t, 1, utils.Min3(5, 1, 9))
}
