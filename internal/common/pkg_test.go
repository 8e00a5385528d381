package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleNameAndPackage(t *testing.T) {
	tests := []struct {
		in     string
		simple string
		pkg    string
	}{
		{"x.y.Klass", "Klass", "x.y"},
		{"Klass", "Klass", ""},
		{"java.util.Date", "Date", "java.util"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.simple, SimpleName(tt.in))
			assert.Equal(t, tt.pkg, PackageOf(tt.in))
			assert.Equal(t, tt.in, Qualify(PackageOf(tt.in), SimpleName(tt.in)))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Int", Capitalize("int"))
	assert.Equal(t, "Date", Capitalize("Date"))
	assert.Equal(t, "Észak", Capitalize("észak"))
	assert.Equal(t, "", Capitalize(""))
}

func TestPackageDir(t *testing.T) {
	assert.Equal(t, "x/y", PackageDir("x.y"))
	assert.Equal(t, "", PackageDir(""))
}

func TestMapAndIsEmpty(t *testing.T) {
	got := Map([]string{"a", "b"}, Capitalize)
	assert.Equal(t, []string{"A", "B"}, got)
	assert.Empty(t, Map([]string(nil), Capitalize))

	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty(got))
}
