package csharp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteCollectionToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare token", "List", "ArrayList"},
		{"generic", "List<string>", "ArrayList<string>"},
		{"nested in map", "Dictionary<string, List<int>>", "Dictionary<string, ArrayList<int>>"},
		{"embedded in identifier", "MyListType", "MyListType"},
		{"empty", "", ""},
		{"no occurrence", "Dictionary<string, int>", "Dictionary<string, int>"},
		{"list of lists", "List<List<int>>", "ArrayList<ArrayList<int>>"},
		{"adjacent generic args", "Tuple<List,List>", "Tuple<ArrayList,ArrayList>"},
		{"suffix of identifier", "PetList", "PetList"},
		{"prefix of identifier", "ListItem", "ListItem"},
		{"identifier ending in token inside generic", "List<PetList>", "ArrayList<PetList>"},
		{"already rewritten", "ArrayList<string>", "ArrayList<string>"},
		{"after space", "Dictionary<string, List>", "Dictionary<string, ArrayList>"},
		{"multibyte neighbours", "Ünïcode<List<é>>", "Ünïcode<ArrayList<é>>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteCollectionToken(tt.in))
		})
	}
}

func TestRewriteCollectionToken_UnchangedInputIsReturnedAsIs(t *testing.T) {
	in := "Dictionary<string, MyListType>"
	assert.Equal(t, in, RewriteCollectionToken(in))
}

func TestOnTypeDeclaration(t *testing.T) {
	c := New()
	assert.Equal(t, "ArrayList<Pet>", c.OnTypeDeclaration("List<Pet>"))
}
