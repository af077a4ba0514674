package rules

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidIsConjunction(t *testing.T) {
	assert.True(t, Valid[string](nil, ""))

	rs := []Rule[string]{Required(""), MaxLength(3)}
	assert.True(t, Valid(rs, "abc"))
	assert.False(t, Valid(rs, ""))
	assert.False(t, Valid(rs, "abcd"))
}

func TestFailuresInOrder(t *testing.T) {
	rs := []Rule[string]{
		MinLength(5),
		Pattern(regexp.MustCompile(`^[0-9]+$`), "digits only"),
		Func(func(string) bool { return false }, ""),
	}
	assert.Equal(t, []string{
		"must be at least 5 characters",
		"digits only",
		"invalid value",
	}, Failures(rs, "ab"))
	assert.Empty(t, Failures(rs[:2], "12345"))
}

func TestOptionalStringRules(t *testing.T) {
	assert.True(t, MinLength(3).Check(""))
	assert.True(t, Pattern(regexp.MustCompile(`^x$`), "").Check(""))
	assert.True(t, MaxLength(2).Check("éé"))
}

func TestNumberRules(t *testing.T) {
	r := InRange(0, 10)
	assert.True(t, r.Check(0))
	assert.True(t, r.Check(10))
	assert.False(t, r.Check(10.5))
	assert.True(t, r.Check(math.NaN()))
	assert.True(t, InRange(math.NaN(), 1).Check(-100))

	assert.False(t, NotEmptyNumber("").Check(math.NaN()))
	assert.True(t, NotEmptyNumber("").Check(0))
}

func TestNotEmpty(t *testing.T) {
	r := NotEmpty[string]("pick one")
	assert.False(t, r.Check(nil))
	assert.True(t, r.Check([]string{"a"}))
	assert.Equal(t, "pick one", r.Message)
}
