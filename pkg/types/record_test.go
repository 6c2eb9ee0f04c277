package types

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// phoneValues flattens a record's phones for comparison.
func phoneValues(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.Value())
	}
	return out
}

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func TestNewRecord(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		r, err := NewRecord("John")
		require.NoError(t, err)
		assert.Equal(t, "John", r.Name().Value())
		assert.Empty(t, r.Phones())

		id, err := uuid.Parse(r.ID())
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("invalid name", func(t *testing.T) {
		r, err := NewRecord("J")
		assert.Nil(t, r)
		assert.ErrorIs(t, err, ErrNameValidation)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := newTestRecord(t, "John")
		b := newTestRecord(t, "John")
		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestRecordAddPhone(t *testing.T) {
	r := newTestRecord(t, "John")

	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("1234567890"))
	assert.Equal(t, []string{"1234567890", "1234567890"}, phoneValues(r), "duplicates are allowed")

	err := r.AddPhone("123")
	assert.ErrorIs(t, err, ErrPhoneValidation)
	assert.Len(t, r.Phones(), 2, "invalid phone must not be appended")

	p, ok := r.FindPhone("1234567890")
	require.True(t, ok)
	assert.Equal(t, "1234567890", p.Value())
}

func TestRecordRemovePhone(t *testing.T) {
	tests := []struct {
		name    string
		phones  []string
		remove  string
		wantErr error
		want    []string
	}{
		{
			name:   "removes single match",
			phones: []string{"1234567890", "5555555555"},
			remove: "1234567890",
			want:   []string{"5555555555"},
		},
		{
			name:   "removes only first duplicate",
			phones: []string{"1234567890", "5555555555", "1234567890"},
			remove: "1234567890",
			want:   []string{"5555555555", "1234567890"},
		},
		{
			name:    "missing phone is not found",
			phones:  []string{"1234567890"},
			remove:  "5555555555",
			wantErr: ErrNotFound,
			want:    []string{"1234567890"},
		},
		{
			name:    "empty record is not found",
			remove:  "5555555555",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "John", tt.phones...)

			err := r.RemovePhone(tt.remove)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var nf *NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, KindPhone, nf.Kind)
				assert.Equal(t, tt.remove, nf.Value)
				assert.Contains(t, err.Error(), tt.remove)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, phoneValues(r))
		})
	}
}

func TestRecordRemoveThenFind(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")

	require.NoError(t, r.RemovePhone("1234567890"))

	_, ok := r.FindPhone("1234567890")
	assert.False(t, ok)
}

func TestRecordFindPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	p, ok := r.FindPhone("5555555555")
	require.True(t, ok)
	assert.Equal(t, "5555555555", p.Value())

	p, ok = r.FindPhone("0000000000")
	assert.False(t, ok)
	assert.Equal(t, Phone{}, p)
}

func TestRecordEditPhone(t *testing.T) {
	tests := []struct {
		name    string
		phones  []string
		oldVal  string
		newVal  string
		wantErr error
		want    []string
	}{
		{
			name:   "edited phone moves to end",
			phones: []string{"1234567890", "5555555555"},
			oldVal: "1234567890",
			newVal: "1112223333",
			want:   []string{"5555555555", "1112223333"},
		},
		{
			name:   "single phone replaced in place",
			phones: []string{"1234567890"},
			oldVal: "1234567890",
			newVal: "1112223333",
			want:   []string{"1112223333"},
		},
		{
			name:   "same value is a no-op",
			phones: []string{"1234567890"},
			oldVal: "1234567890",
			newVal: "1234567890",
			want:   []string{"1234567890"},
		},
		{
			name:    "invalid new value leaves list unchanged",
			phones:  []string{"1234567890", "5555555555"},
			oldVal:  "1234567890",
			newVal:  "abc",
			wantErr: ErrPhoneValidation,
			want:    []string{"1234567890", "5555555555"},
		},
		{
			name:    "invalid new value checked before old lookup",
			phones:  []string{"1234567890"},
			oldVal:  "0000000000",
			newVal:  "abc",
			wantErr: ErrPhoneValidation,
			want:    []string{"1234567890"},
		},
		{
			name:    "absent old value leaves list unchanged",
			phones:  []string{"1234567890", "5555555555"},
			oldVal:  "0000000000",
			newVal:  "1112223333",
			wantErr: ErrNotFound,
			want:    []string{"1234567890", "5555555555"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "John", tt.phones...)

			err := r.EditPhone(tt.oldVal, tt.newVal)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, phoneValues(r))
		})
	}
}

func TestRecordPhonesReturnsCopy(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890")

	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}

	assert.Equal(t, []string{"1234567890"}, phoneValues(r))
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		want   string
	}{
		{
			name: "no phones",
			want: "Contact name: John, phones: ",
		},
		{
			name:   "one phone",
			phones: []string{"9876543210"},
			want:   "Contact name: John, phones: 9876543210",
		},
		{
			name:   "two phones",
			phones: []string{"1234567890", "5555555555"},
			want:   "Contact name: John, phones: 1234567890; 5555555555",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "John", tt.phones...)
			assert.Equal(t, tt.want, r.String())
		})
	}
}
