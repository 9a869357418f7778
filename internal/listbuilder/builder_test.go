package listbuilder

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/linked-list/internal/intreader"
	"github.com/lueurxax/linked-list/internal/listbuilder/mocks"
	"github.com/lueurxax/linked-list/internal/log"
)

func Test_builder_Build(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int64
	}{
		{name: "three values", input: "3 10 20 30", want: []int64{30, 20, 10}},
		{name: "zero count", input: "0", want: []int64{}},
		{name: "single value", input: "1\n42\n", want: []int64{42}},
		{name: "five values", input: "5 1 2 3 4 5", want: []int64{5, 4, 3, 2, 1}},
		{name: "negative count", input: "-3 1 2 3", want: []int64{}},
		{name: "extra input ignored", input: "2 7 8 9", want: []int64{8, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockmetrics(gomock.NewController(t))
			m.EXPECT().NodeInserted().Times(len(tt.want))
			m.EXPECT().ListBuilt(len(tt.want)).Times(1)

			b := NewBuilder(intreader.New(strings.NewReader(tt.input)), io.Discard, m, log.NewNop())
			list, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), list.Len())
			assert.Equal(t, tt.want, list.Values())
		})
	}
}

func Test_builder_Build_consumption(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "count plus values", input: "3 1 2 3 4 5", want: 4},
		{name: "zero count reads only count", input: "0 1 2", want: 1},
		{name: "negative count reads only count", input: "-2 1 2", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks.NewMockmetrics(gomock.NewController(t))
			m.EXPECT().NodeInserted().AnyTimes()
			m.EXPECT().ListBuilt(gomock.Any()).Times(1)

			r := intreader.New(strings.NewReader(tt.input))
			_, err := NewBuilder(r, io.Discard, m, log.NewNop()).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Consumed())
		})
	}
}

func Test_builder_Build_prompts(t *testing.T) {
	t.Run("prompt precedes every read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prompts := new(strings.Builder)

		r := mocks.NewMockintReader(ctrl)
		m := mocks.NewMockmetrics(ctrl)
		m.EXPECT().NodeInserted().Times(2)
		m.EXPECT().ListBuilt(2)

		expected := []string{countPrompt, countPrompt + dataPrompt, countPrompt + dataPrompt + dataPrompt}
		values := []int64{2, 5, 6}
		calls := make([]*gomock.Call, 0, len(values))
		for i := range values {
			i := i
			calls = append(calls, r.EXPECT().ReadInt().DoAndReturn(func() (int64, error) {
				assert.Equal(t, expected[i], prompts.String())
				return values[i], nil
			}))
		}
		gomock.InOrder(calls...)

		list, err := NewBuilder(r, prompts, m, log.NewNop()).Build()
		require.NoError(t, err)
		assert.Equal(t, []int64{6, 5}, list.Values())
		assert.Equal(t, "Enter count: Enter data: Enter data: ", prompts.String())
	})
	t.Run("zero count prompts once", func(t *testing.T) {
		m := mocks.NewMockmetrics(gomock.NewController(t))
		m.EXPECT().ListBuilt(0)

		prompts := new(strings.Builder)
		_, err := NewBuilder(intreader.New(strings.NewReader("0")), prompts, m, log.NewNop()).Build()
		require.NoError(t, err)
		assert.Equal(t, "Enter count: ", prompts.String())
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func Test_builder_Build_errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		m := mocks.NewMockmetrics(gomock.NewController(t))

		list, err := NewBuilder(intreader.New(strings.NewReader("")), io.Discard, m, log.NewNop()).Build()
		assert.ErrorIs(t, err, intreader.ErrEndOfInput)
		assert.Nil(t, list)
	})
	t.Run("fewer values than count", func(t *testing.T) {
		m := mocks.NewMockmetrics(gomock.NewController(t))
		m.EXPECT().NodeInserted().Times(2)

		list, err := NewBuilder(intreader.New(strings.NewReader("3 1 2")), io.Discard, m, log.NewNop()).Build()
		assert.ErrorIs(t, err, intreader.ErrEndOfInput)
		assert.Contains(t, err.Error(), "read value 3 of 3")
		assert.Nil(t, list)
	})
	t.Run("malformed value", func(t *testing.T) {
		m := mocks.NewMockmetrics(gomock.NewController(t))
		m.EXPECT().NodeInserted().Times(1)

		list, err := NewBuilder(intreader.New(strings.NewReader("2 1 x")), io.Discard, m, log.NewNop()).Build()
		assert.ErrorIs(t, err, intreader.ErrInputParse)
		assert.Nil(t, list)
	})
	t.Run("malformed count", func(t *testing.T) {
		m := mocks.NewMockmetrics(gomock.NewController(t))

		_, err := NewBuilder(intreader.New(strings.NewReader("three")), io.Discard, m, log.NewNop()).Build()
		assert.ErrorIs(t, err, intreader.ErrInputParse)
		assert.Contains(t, err.Error(), "read count")
	})
	t.Run("prompt write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockintReader(ctrl)
		m := mocks.NewMockmetrics(ctrl)

		_, err := NewBuilder(r, failingWriter{}, m, log.NewNop()).Build()
		assert.ErrorContains(t, err, "write prompt")
	})
}
