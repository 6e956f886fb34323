package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain integer", in: "120", want: "120"},
		{name: "decimal spelling of integer", in: "1234.0", want: "1,234"},
		{name: "grouped integer", in: "1234", want: "1,234"},
		{name: "true decimal", in: "1234.5", want: "1,234.5"},
		{name: "negative", in: "-1234", want: "-1,234"},
		{name: "text passes through", in: "daily ferry", want: "daily ferry"},
		{name: "email passes through", in: "info@example.mv", want: "info@example.mv"},
		{name: "empty", in: "", want: NoData},
		{name: "placeholder N/A", in: "N/A", want: NoData},
		{name: "placeholder null", in: "null", want: NoData},
		{name: "placeholder undefined", in: "undefined", want: NoData},
		{name: "whitespace only", in: "   ", want: NoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.in))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,234", Count("1234"))
	assert.Equal(t, "1,234", Count("1234.0"))
	assert.Equal(t, NoData, Count("not a number"), "counts never pass text through")
	assert.Equal(t, NoData, Count(""))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Total Households", Label("total_households"))
	assert.Equal(t, "Distance To Male Km", Label("distance_to_male_km"))
	assert.Equal(t, "Beds", Label("beds"))
}
