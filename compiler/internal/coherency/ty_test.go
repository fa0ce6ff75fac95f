package coherency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTyConvertible(t *testing.T) {
	point := Named(FullPath{"geo", "Point"})
	assert.True(t, Int.ConvertibleTo(Int))
	assert.False(t, Int.ConvertibleTo(Bool))
	assert.False(t, Int.ConvertibleTo(Float))
	assert.True(t, Unknown.ConvertibleTo(String))
	assert.True(t, String.ConvertibleTo(Unknown))
	assert.True(t, point.ConvertibleTo(Named(FullPath{"geo", "Point"})))
	assert.False(t, point.ConvertibleTo(Named(FullPath{"Point"})))
	assert.False(t, point.ConvertibleTo(Void))
}

func TestTyOr(t *testing.T) {
	assert.Equal(t, Bool, Bool.Or(Int))
	assert.Equal(t, Int, Unknown.Or(Int))
	assert.Equal(t, Unknown, Unknown.Or(Unknown))
	assert.Equal(t, Void, Void.Or(Unknown))
}

func TestTyString(t *testing.T) {
	cases := []struct {
		ty   Ty
		want string
	}{
		{Void, "Void"},
		{Bool, "Bool"},
		{Int, "Int"},
		{Float, "Float"},
		{String, "String"},
		{Unknown, "{unknown}"},
		{Named(FullPath{"a", "Shape"}), "a::Shape"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.ty.String())
	}
	assert.Equal(t, KindNamed, Named(FullPath{"x"}).Kind())
}
