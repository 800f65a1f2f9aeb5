package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andybalholm/selector"
	"github.com/andybalholm/selector/geom"
)

func TestRectangleRoundTrip(t *testing.T) {
	r := geom.NewRectangle(3, 4.5)

	text, err := Serialize(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":3,"height":4.5}`, text)

	back, err := Deserialize[geom.Rectangle](text)
	require.NoError(t, err)
	assert.Equal(t, r, back)
	assert.Equal(t, 13.5, back.Area())
}

func TestDeserializePartial(t *testing.T) {
	r, err := Deserialize[geom.Rectangle](`{"width":2}`)
	require.NoError(t, err)
	assert.Equal(t, 2.0, r.Width)
	assert.Zero(t, r.Area())
}

func TestDeserializeInvalid(t *testing.T) {
	_, err := Deserialize[geom.Rectangle](`{"width":`)
	assert.Error(t, err)

	_, err = Deserialize[geom.Rectangle](`"text"`)
	assert.Error(t, err)
}

func TestSerializeSelector(t *testing.T) {
	rule := struct {
		Selector *selector.Builder `json:"selector"`
		Box      geom.Rectangle    `json:"box"`
	}{
		Selector: selector.Element("div").ID("main"),
		Box:      geom.NewRectangle(1, 2),
	}

	text, err := Serialize(rule)
	require.NoError(t, err)
	assert.JSONEq(t, `{"selector":"div#main","box":{"width":1,"height":2}}`, text)

	rule.Selector = selector.Class("x").ID("y")
	_, err = Serialize(rule)
	assert.ErrorIs(t, err, selector.ErrOrderViolation)
}
