package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownNames(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, "채소", c.Classify("양파"))
	assert.Equal(t, "육류", c.Classify("돼지고기"))
	assert.Equal(t, "양념", c.Classify("고추장"))
}

func TestClassifyUnknownFallsBack(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, CategoryUnknown, c.Classify("듣도보도못한재료"))
}

func TestClassifyCustomTable(t *testing.T) {
	c := NewClassifier(map[string]string{"트러플": "버섯"})

	assert.Equal(t, "버섯", c.Classify("트러플"))
	assert.Equal(t, CategoryUnknown, c.Classify("양파"))
}
