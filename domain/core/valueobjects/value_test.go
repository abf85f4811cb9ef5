package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceLiteral(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		kind    ValueKind
		want    Value
		wantErr bool
	}{
		{name: "string passthrough", literal: "hello", kind: KindString, want: StringValue("hello")},
		{name: "number", literal: "42.5", kind: KindNumber, want: NumberValue(42.5)},
		{name: "number with spaces", literal: " 30 ", kind: KindNumber, want: NumberValue(30)},
		{name: "number invalid", literal: "abc", kind: KindNumber, wantErr: true},
		{name: "bool true", literal: "true", kind: KindBool, want: BoolValue(true)},
		{name: "bool one", literal: "1", kind: KindBool, want: BoolValue(true)},
		{name: "bool yes mixed case", literal: "YES", kind: KindBool, want: BoolValue(true)},
		{name: "bool anything else is false", literal: "banana", kind: KindBool, want: BoolValue(false)},
		{name: "timestamp rfc3339", literal: "2024-03-01T10:00:00Z", kind: KindTimestamp,
			want: TimestampValue(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))},
		{name: "timestamp date only", literal: "2024-03-01", kind: KindTimestamp,
			want: TimestampValue(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "timestamp invalid", literal: "yesterday", kind: KindTimestamp, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceLiteral(tt.literal, tt.kind)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "30", NumberValue(30).String())
	assert.Equal(t, "2.5", NumberValue(2.5).String())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "hello", StringValue("hello").String())
	assert.Equal(t, "2024-03-01T10:00:00Z",
		TimestampValue(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)).String())
}

func TestValueCompare(t *testing.T) {
	cmp, err := NumberValue(30).Compare(NumberValue(28))
	require.NoError(t, err)
	assert.Positive(t, cmp)

	earlier := TimestampValue(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := TimestampValue(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	cmp, err = earlier.Compare(later)
	require.NoError(t, err)
	assert.Negative(t, cmp)

	_, err = StringValue("a").Compare(StringValue("b"))
	assert.Error(t, err, "strings are not ordered")

	_, err = NumberValue(1).Compare(StringValue("1"))
	assert.Error(t, err, "mismatched kinds are not comparable")
}

func TestValueEqualAcrossKinds(t *testing.T) {
	assert.False(t, NumberValue(1).Equal(StringValue("1")))
	assert.True(t, NumberValue(1).Equal(NumberValue(1)))
	assert.False(t, BoolValue(true).Equal(BoolValue(false)))
}

func TestZeroValueIsEmptyString(t *testing.T) {
	var v Value
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "", v.String())
}
